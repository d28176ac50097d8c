// Command panelbox inspects and rewrites comic archive metadata.
package main
