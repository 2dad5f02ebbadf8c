package project

import (
	"github.com/linskybing/design-review/internal/domain/drawing"
	"github.com/linskybing/design-review/internal/domain/user"
)

// Detail is a project with its drawings and team members resolved.
type Detail struct {
	Project
	Drawings    []drawing.Drawing `json:"drawings"`
	TeamMembers []user.User       `json:"team_members"`
}
