package main

import (
	"github.com/fulmenhq/docstruct/appidentity"
	"github.com/fulmenhq/docstruct/config"
	"github.com/fulmenhq/docstruct/logging"
)

// binaryIdentity describes docstruct itself (teacher: appidentity.Identity,
// adapted for this binary rather than loaded from a .fulmen/app.yaml since
// docstruct ships no such manifest).
var binaryIdentity = &appidentity.Identity{
	BinaryName:  "docstruct",
	Vendor:      "fulmenhq",
	EnvPrefix:   "DOCSTRUCT_",
	ConfigName:  "docstruct",
	Description: "Cross-validated PDF page structure reconstruction (parser + OCR fusion)",
}

func loadRuntime(quiet bool) (*config.Config, *logging.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.NewCLI(binaryIdentity.Binary())
	if err != nil {
		return nil, nil, err
	}
	if quiet {
		logger.SetLevel(logging.ERROR)
	}

	return cfg, logger, nil
}
