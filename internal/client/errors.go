package client

import "errors"

var (
	ErrNoCommand        = errors.New("no command given")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrProjectMissing   = errors.New("-project is required")
	ErrLabelNameMissing = errors.New("-name is required")
)
