package export

import "fmt"

// Result is the outcome of an export operation. Exporters always return a
// Result with a non-empty Message; they never surface raw errors to callers.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func succeeded(format string) Result {
	return Result{Success: true, Message: fmt.Sprintf("%s exported successfully!", format)}
}

func failed(format string) Result {
	return Result{Success: false, Message: fmt.Sprintf("Failed to export %s. Please try again.", format)}
}
