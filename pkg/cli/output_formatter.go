package cli

import (
	"fmt"
	"io"

	"spark/internal/model"
)

type OutputFormatter struct {
	w io.Writer
}

func NewOutputFormatter(w io.Writer) *OutputFormatter {
	return &OutputFormatter{w: w}
}

// PrintResult 每个探测一行: "[+] <port> is OPEN" 或 "[-] <port> is CLOSED"
func (of *OutputFormatter) PrintResult(result model.ScanResult) error {
	marker := "-"
	if result.Status == model.StatusOpen {
		marker = "+"
	}
	_, err := fmt.Fprintf(of.w, "[%s] %d is %s\n", marker, result.Port, result.Status)
	return err
}

func (of *OutputFormatter) PrintError(err error) {
	fmt.Fprintf(of.w, "Error: %v\n", err)
}
