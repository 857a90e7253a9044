package mods

import (
	"bindcore/common"
	"bindcore/deps"
	"bindcore/logging"
	"bindcore/typing"
	"errors"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
)

// tomlModuleFile represents the manifest file as it is encoded in TOML
type tomlModuleFile struct {
	Module *tomlModule `toml:"module"`
	Apis   []*tomlApi  `toml:"apis,omitempty"`
}

// tomlModule represents the batch header as it is encoded in TOML
type tomlModule struct {
	Name     string `toml:"name"`
	Version  string `toml:"bindcore-version"`
	LogLevel string `toml:"loglevel,omitempty"`
}

// tomlApi represents a declaration as it is encoded in TOML
type tomlApi struct {
	Name  string   `toml:"name"`
	Kind  string   `toml:"kind"`
	Types []string `toml:"types,omitempty"`
	Deps  []string `toml:"deps,omitempty"`
}

// LoadModule loads and validates the manifest in the directory at `path`.
// Every type expression is parsed and normalized as it is loaded so the rest
// of the analysis only ever sees canonical type names.
func LoadModule(path string) (*BindModule, error) {
	abspath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	buff, err := ioutil.ReadFile(filepath.Join(abspath, common.ManifestFileName))
	if err != nil {
		return nil, err
	}

	tmf := &tomlModuleFile{}
	if err := toml.Unmarshal(buff, tmf); err != nil {
		return nil, fmt.Errorf("error parsing manifest at %s: %w", abspath, err)
	}

	bmod := &BindModule{
		ID:         common.GenerateIDFromPath(abspath),
		ModuleRoot: abspath,
	}

	if err := validateModule(bmod, tmf.Module); err != nil {
		return nil, err
	}

	seen := make(map[deps.QualifiedName]struct{})
	for _, tapi := range tmf.Apis {
		api, err := convertApi(tapi)
		if err != nil {
			return nil, fmt.Errorf("%w in module %s", err, bmod.Name)
		}

		if _, ok := seen[api.QualName]; ok {
			return nil, fmt.Errorf("API `%s` is declared multiple times in module %s", api.QualName, bmod.Name)
		}
		seen[api.QualName] = struct{}{}

		bmod.Apis = append(bmod.Apis, api)
	}

	return bmod, nil
}

// validateModule checks that the manifest header is valid and moves it over
// to the bind module
func validateModule(bmod *BindModule, mod *tomlModule) error {
	if mod == nil {
		return fmt.Errorf("missing [module] table in manifest at %s", bmod.ModuleRoot)
	}

	if mod.Name == "" {
		return fmt.Errorf("missing module name for module at %s", bmod.ModuleRoot)
	}

	if !common.IsValidIdentifier(mod.Name) {
		return errors.New("module name must be a valid identifier")
	}

	if mod.Version != common.BindcoreVersion {
		logging.ReportManifestWarning(
			mod.Name,
			fmt.Sprintf("version of module `%s` (v%s) does not match current bindcore version (v%s)", mod.Name, mod.Version, common.BindcoreVersion),
		)
	}

	bmod.Name = mod.Name
	bmod.LogLevel = mod.LogLevel
	return nil
}

// convertApi converts a TOML declaration into an API item
func convertApi(tapi *tomlApi) (*deps.Api, error) {
	if err := validateQualName(tapi.Name); err != nil {
		return nil, err
	}

	kind, ok := deps.ApiKindByName(tapi.Kind)
	if !ok {
		return nil, fmt.Errorf("API `%s` has unknown kind `%s`", tapi.Name, tapi.Kind)
	}

	types := make([]typing.TypeExpr, len(tapi.Types))
	for i, typeSrc := range tapi.Types {
		typ, err := typing.ParseTypeExpr(typeSrc)
		if err != nil {
			return nil, fmt.Errorf("API `%s`: %w", tapi.Name, err)
		}

		types[i] = typ
	}

	explicitDeps := make([]deps.QualifiedName, len(tapi.Deps))
	for i, dep := range tapi.Deps {
		if err := validateQualName(dep); err != nil {
			return nil, fmt.Errorf("dependency of API `%s`: %w", tapi.Name, err)
		}

		explicitDeps[i] = deps.NewQualifiedNameFromCppName(dep)
	}

	return deps.NewApi(deps.NewQualifiedNameFromCppName(tapi.Name), kind, types, explicitDeps), nil
}

// validateQualName checks that every segment of a qualified name is a valid
// identifier
func validateQualName(name string) error {
	for _, seg := range strings.Split(name, common.CppNamespaceSep) {
		if !common.IsValidIdentifier(seg) {
			return fmt.Errorf("`%s` is not a valid qualified name", name)
		}
	}

	return nil
}
