package canonical

import (
	"bytes"
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// MarshalPackage renders pkg as canonical.json.
func MarshalPackage(pkg *Package) ([]byte, error) {
	return json.Marshal(pkg)
}

// MarshalPackageIndent renders pkg as indented canonical.json for display.
func MarshalPackageIndent(pkg *Package) ([]byte, error) {
	return json.MarshalIndent(pkg, "", "  ")
}

// UnmarshalPackage parses a canonical.json document. The document must be
// tagged content.format = "canonical"; anything else is a ParseError.
func UnmarshalPackage(data []byte) (*Package, error) {
	var pkg Package
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&pkg); err != nil {
		return nil, newParseError(FormatCanonical, "", err)
	}
	if pkg.Content.Format != string(FormatCanonical) {
		return nil, newParseError(FormatCanonical, "content.format",
			errors.Newf("expected %q, got %q", FormatCanonical, pkg.Content.Format))
	}
	return &pkg, nil
}

// sectionEnvelope is the wire shape of one section: the variant's own
// fields plus a discriminating "type" tag.
type sectionEnvelope struct {
	Type SectionType `json:"type"`
}

// MarshalJSON implements json.Marshaler for the section list, writing each
// section as {"type": "...", ...fields}.
func (c Content) MarshalJSON() ([]byte, error) {
	raw := make([]json.RawMessage, 0, len(c.Sections))
	for _, s := range c.Sections {
		data, err := marshalSection(s)
		if err != nil {
			return nil, err
		}
		raw = append(raw, data)
	}
	return json.Marshal(struct {
		Format   string            `json:"format"`
		Version  string            `json:"version"`
		Sections []json.RawMessage `json:"sections"`
	}{c.Format, c.Version, raw})
}

// UnmarshalJSON implements json.Unmarshaler, decoding each section by its
// "type" tag. An unknown tag fails the whole decode; the union is closed.
func (c *Content) UnmarshalJSON(data []byte) error {
	var wire struct {
		Format   string            `json:"format"`
		Version  string            `json:"version"`
		Sections []json.RawMessage `json:"sections"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	c.Format = wire.Format
	c.Version = wire.Version
	c.Sections = nil
	for _, raw := range wire.Sections {
		s, err := unmarshalSection(raw)
		if err != nil {
			return err
		}
		c.Sections = append(c.Sections, s)
	}
	return nil
}

func marshalSection(s Section) ([]byte, error) {
	switch v := s.(type) {
	case *MetadataSection:
		return json.Marshal(struct {
			Type SectionType `json:"type"`
			*MetadataSection
		}{SectionMetadata, v})
	case *InstructionsSection:
		return json.Marshal(struct {
			Type SectionType `json:"type"`
			*InstructionsSection
		}{SectionInstructions, v})
	case *RulesSection:
		return json.Marshal(struct {
			Type SectionType `json:"type"`
			*RulesSection
		}{SectionRules, v})
	case *ExamplesSection:
		return json.Marshal(struct {
			Type SectionType `json:"type"`
			*ExamplesSection
		}{SectionExamples, v})
	case *PersonaSection:
		return json.Marshal(struct {
			Type SectionType `json:"type"`
			*PersonaSection
		}{SectionPersona, v})
	case *ToolsSection:
		return json.Marshal(struct {
			Type SectionType `json:"type"`
			*ToolsSection
		}{SectionTools, v})
	case *ContextSection:
		return json.Marshal(struct {
			Type SectionType `json:"type"`
			*ContextSection
		}{SectionContext, v})
	case *HookSection:
		return json.Marshal(struct {
			Type SectionType `json:"type"`
			*HookSection
		}{SectionHook, v})
	case *CustomSection:
		return json.Marshal(struct {
			Type SectionType `json:"type"`
			*CustomSection
		}{SectionCustom, v})
	default:
		return nil, errors.Newf("unmarshalable section type %T", s)
	}
}

func unmarshalSection(raw json.RawMessage) (Section, error) {
	var env sectionEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}

	var (
		s   Section
		err error
	)
	switch env.Type {
	case SectionMetadata:
		v := &MetadataSection{}
		err, s = json.Unmarshal(raw, v), v
	case SectionInstructions:
		v := &InstructionsSection{}
		err, s = json.Unmarshal(raw, v), v
	case SectionRules:
		v := &RulesSection{}
		err, s = json.Unmarshal(raw, v), v
	case SectionExamples:
		v := &ExamplesSection{}
		err, s = json.Unmarshal(raw, v), v
	case SectionPersona:
		v := &PersonaSection{}
		err, s = json.Unmarshal(raw, v), v
	case SectionTools:
		v := &ToolsSection{}
		err, s = json.Unmarshal(raw, v), v
	case SectionContext:
		v := &ContextSection{}
		err, s = json.Unmarshal(raw, v), v
	case SectionHook:
		v := &HookSection{}
		err, s = json.Unmarshal(raw, v), v
	case SectionCustom:
		v := &CustomSection{}
		err, s = json.Unmarshal(raw, v), v
	default:
		return nil, newParseError(FormatCanonical, "type",
			errors.Wrapf(ErrUnknownSection, "%q", env.Type))
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
