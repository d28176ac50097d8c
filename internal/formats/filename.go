package formats

import (
	"path/filepath"
	"strings"

	"panelbox/internal/filename"
	"panelbox/internal/metadata"
)

// filenameAdapter treats the archive file name as a metadata format. Parse
// takes the base name as its payload; Render produces the preferred name.
type filenameAdapter struct{}

func (filenameAdapter) Name() string        { return NameFilename }
func (filenameAdapter) SidecarName() string { return "" }

func (filenameAdapter) Parse(data []byte) (metadata.Record, error) {
	fields := filename.Parse(filepath.Base(strings.TrimSpace(string(data))))
	record := metadata.Record{}
	setString(record, metadata.SeriesKey, fields.Series)
	setString(record, metadata.TitleKey, fields.Title)
	if fields.Issue != "" {
		record[metadata.IssueKey] = metadata.Record{metadata.IssueNameKey: fields.Issue}
	}
	setInt(record, metadata.IssueCountKey, fields.IssueCount)
	setInt(record, metadata.VolumeKey, fields.Volume)
	if fields.Year != 0 {
		record[metadata.DateKey] = metadata.Record{metadata.YearKey: fields.Year}
	}
	setString(record, metadata.OriginalFormatKey, fields.OriginalFormat)
	setString(record, metadata.ScanInfoKey, fields.ScanInfo)
	return record, nil
}

func (filenameAdapter) Render(record metadata.Record) ([]byte, error) {
	fields := filename.Fields{
		Series:         record.String(metadata.SeriesKey),
		Title:          record.String(metadata.TitleKey),
		Issue:          record.IssueName(),
		IssueCount:     recordInt(record, metadata.IssueCountKey),
		Volume:         recordInt(record, metadata.VolumeKey),
		OriginalFormat: record.String(metadata.OriginalFormatKey),
		ScanInfo:       record.String(metadata.ScanInfoKey),
	}
	if date := record.Sub(metadata.DateKey); len(date) > 0 {
		fields.Year, _ = date.Int(metadata.YearKey)
	}
	return []byte(fields.Unparse()), nil
}
