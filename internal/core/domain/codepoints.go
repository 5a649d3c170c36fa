package domain

import (
	"bytes"
	"encoding/json"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// CodepointType selects the file layout of an emitted codepoint mapping.
type CodepointType string

const (
	// CodepointsWeb assigns the mapping to a browser global.
	CodepointsWeb CodepointType = "web"
	// CodepointsCommonJS exports the mapping as a CommonJS module.
	CodepointsCommonJS CodepointType = "commonjs"
	// CodepointsJSON writes the bare mapping.
	CodepointsJSON CodepointType = "json"
)

// DefaultCodepointsFileName is used when a target does not name its file.
const DefaultCodepointsFileName = "[fontname].codepoints.js"

// ParseCodepointType validates a codepoint file type. The empty string selects CodepointsWeb.
func ParseCodepointType(s string) (CodepointType, error) {
	switch t := CodepointType(s); t {
	case "":
		return CodepointsWeb, nil
	case CodepointsWeb, CodepointsCommonJS, CodepointsJSON:
		return t, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownCodepointType, "invalid codepoint type"), "type", s)
	}
}

// CodepointTarget describes one emitted codepoint mapping file.
// Empty fields fall back to the caller's settings and then to the defaults.
type CodepointTarget struct {
	FileName string        `json:"fileName,omitempty" yaml:"fileName"`
	Type     CodepointType `json:"type,omitempty" yaml:"type"`
}

// EmitCodepoints is the decoded "emitCodepoints" option.
//
// A nil value means the option was not given. An empty, non-nil value means
// emission was explicitly disabled.
type EmitCodepoints []CodepointTarget

// UnmarshalJSON accepts true/false, a file name, a target object or a list of either.
func (e *EmitCodepoints) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*e = nil
		return nil
	}

	var enabled bool
	if err := json.Unmarshal(data, &enabled); err == nil {
		if enabled {
			*e = EmitCodepoints{{}}
		} else {
			*e = EmitCodepoints{}
		}
		return nil
	}

	if len(data) > 0 && data[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return zerr.Wrap(err, "invalid emitCodepoints list")
		}
		out := make(EmitCodepoints, 0, len(raw))
		for _, item := range raw {
			target, err := decodeJSONTarget(item)
			if err != nil {
				return err
			}
			out = append(out, target)
		}
		*e = out
		return nil
	}

	target, err := decodeJSONTarget(data)
	if err != nil {
		return err
	}
	*e = EmitCodepoints{target}
	return nil
}

func decodeJSONTarget(data []byte) (CodepointTarget, error) {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		return CodepointTarget{FileName: name}, nil
	}
	var target CodepointTarget
	if err := json.Unmarshal(data, &target); err != nil {
		return CodepointTarget{}, zerr.Wrap(err, "emitCodepoints entries must be a file name or an object")
	}
	return target, nil
}

// UnmarshalYAML accepts the same shapes as UnmarshalJSON.
func (e *EmitCodepoints) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		out := make(EmitCodepoints, 0, len(value.Content))
		for _, item := range value.Content {
			target, err := decodeYAMLTarget(item)
			if err != nil {
				return err
			}
			out = append(out, target)
		}
		*e = out
		return nil
	case yaml.ScalarNode:
		if value.ShortTag() == "!!bool" {
			var enabled bool
			if err := value.Decode(&enabled); err != nil {
				return err
			}
			if enabled {
				*e = EmitCodepoints{{}}
			} else {
				*e = EmitCodepoints{}
			}
			return nil
		}
	}

	target, err := decodeYAMLTarget(value)
	if err != nil {
		return err
	}
	*e = EmitCodepoints{target}
	return nil
}

func decodeYAMLTarget(value *yaml.Node) (CodepointTarget, error) {
	if value.Kind == yaml.ScalarNode {
		return CodepointTarget{FileName: value.Value}, nil
	}
	var target CodepointTarget
	if err := value.Decode(&target); err != nil {
		return CodepointTarget{}, zerr.Wrap(err, "emitCodepoints entries must be a file name or an object")
	}
	return target, nil
}
