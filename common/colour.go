package common

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// HexColor is an NRGBA colour written in documents as "#RRGGBB" or
// "#RRGGBBAA".
type HexColor color.NRGBA

func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	*c = HexColor(parsed)
	return nil
}

func (c HexColor) MarshalYAML() (any, error) {
	return c.String(), nil
}

func (c HexColor) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseHexColor accepts an optional leading '#'.
func ParseHexColor(v string) (color.NRGBA, error) {
	s := strings.TrimPrefix(v, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	var channels [4]uint8
	channels[3] = 255
	for i := 0; i*2 < len(s); i++ {
		n, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
		}
		channels[i] = uint8(n)
	}
	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}
