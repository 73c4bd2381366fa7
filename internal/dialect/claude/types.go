// Package claude converts between Claude Code markdown documents (skills,
// agents, slash commands, rules) and the canonical package form.
package claude

import (
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// ToolList is an allowed-tools list. Claude Code accepts both a
// space-delimited string and a list of strings in frontmatter.
type ToolList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *ToolList) UnmarshalYAML(value *yaml.Node) error {
	var multi []string
	if err := value.Decode(&multi); err == nil {
		*t = multi
		return nil
	}

	var single string
	if err := value.Decode(&single); err == nil {
		if single == "" {
			*t = nil
			return nil
		}
		for _, part := range strings.Fields(single) {
			*t = append(*t, part)
		}
		return nil
	}

	return errors.Newf("allowed-tools must be a string or list of strings, got %s", value.Tag)
}

// String returns the space-delimited string representation.
func (t ToolList) String() string {
	return strings.Join(t, " ")
}

// matter is the Claude Code frontmatter schema across subtypes. Skills use
// name/description/license/metadata, commands add argument-hint and model.
type matter struct {
	Name                   string            `yaml:"name,omitempty"`
	Description            string            `yaml:"description,omitempty"`
	License                string            `yaml:"license,omitempty"`
	Compatibility          []string          `yaml:"compatibility,omitempty"`
	Metadata               map[string]string `yaml:"metadata,omitempty"`
	AllowedTools           ToolList          `yaml:"allowed-tools,omitempty"`
	ArgumentHint           string            `yaml:"argument-hint,omitempty"`
	Model                  string            `yaml:"model,omitempty"`
	DisableModelInvocation bool              `yaml:"disable-model-invocation,omitempty"`
	Tags                   []string          `yaml:"tags,omitempty"`
}
