// Package textutil sanitizes rendered file names for safe filesystem use.
package textutil
