package mods

import (
	"bindcore/common"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// InitModule creates a new, empty manifest with the given name at the given
// path.  Declarations are appended to it by the header parser.
func InitModule(name, path string) error {
	modFilePath := filepath.Join(path, common.ManifestFileName)

	// check to see if a manifest already exists
	_, err := os.Stat(modFilePath)
	if err == nil {
		return errors.New("manifest file already exists")
	}

	if !os.IsNotExist(err) {
		return fmt.Errorf("manifest file error: %s", err.Error())
	}

	if !common.IsValidIdentifier(name) {
		return errors.New("module name must be a valid identifier")
	}

	f, err := os.Create(modFilePath)
	if err != nil {
		return fmt.Errorf("error creating manifest file: %s", err.Error())
	}
	defer f.Close()

	mod := &tomlModule{
		Name:    name,
		Version: common.BindcoreVersion,
	}

	if err := toml.NewEncoder(f).Encode(&tomlModuleFile{Module: mod}); err != nil {
		return fmt.Errorf("error encoding TOML %s", err.Error())
	}

	return nil
}
