package domain

import "errors"

var (
	ErrManualNotFound       = errors.New("manual not found")
	ErrMissingSourcePath    = errors.New("extracted manual is missing sourcePdfPath")
	ErrDuplicateSourcePath  = errors.New("manual with this source path already exists")
	ErrInvalidContentKind   = errors.New("invalid section content kind")
	ErrInvalidContentShape  = errors.New("section content does not match its declared kind")
	ErrKnowledgeUnavailable = errors.New("knowledge corpus is not available")
)
