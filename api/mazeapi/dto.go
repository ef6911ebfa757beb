// Package mazeapi exposes maze conversion and lookup over HTTP.
package mazeapi

// ConvertRequest asks for a drawing under the configured base
// directory to be converted to a maze document.
type ConvertRequest struct {
	FileName string `json:"file_name" binding:"required"`
}
