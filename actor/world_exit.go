package actor

import (
	"fmt"

	"github.com/milk9111/quarrel/behavior"
	"gopkg.in/yaml.v3"
)

// WorldExit loads another level when the player touches it.
type WorldExit struct {
	behavior.Base

	Level string
}

func (*WorldExit) TypeName() string { return TypeWorldExit }

func (x *WorldExit) BeginContact(ctx *behavior.Context, c behavior.Contact) behavior.Transition {
	if c.OtherTypeName != TypePlayer {
		return behavior.Continue()
	}
	if x.Level == "" {
		ctx.Logger().Warn("world exit has no level")
		return behavior.Continue()
	}
	ctx.World.RequestLevel(x.Level)
	return behavior.Continue()
}

type worldExitDoc struct {
	Level string `yaml:"level,omitempty"`
}

func (x *WorldExit) MarshalYAML() (any, error) {
	return worldExitDoc{Level: x.Level}, nil
}

func (x *WorldExit) Decode(node *yaml.Node) error {
	doc := worldExitDoc{Level: x.Level}
	if err := node.Decode(&doc); err != nil {
		return fmt.Errorf("world exit: %w", err)
	}
	x.Level = doc.Level
	return nil
}

func (x *WorldExit) Inspector() behavior.Inspector {
	return behavior.NewFieldSet().Text("World File to Load", &x.Level)
}
