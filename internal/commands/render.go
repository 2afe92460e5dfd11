package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/clawedcode/voidmud/internal/display"
	"github.com/clawedcode/voidmud/internal/game"
)

// Render order for exits; map iteration order would jitter between looks.
var exitOrder = []string{"north", "south", "east", "west", "up", "down"}

const roomHeaderTmpl = `{{ .Name | upper }}
{{ .Desc }}`

const enemyScanTmpl = `{{ .Name }} [HP {{ .HP }}/{{ .MaxHP }}  ATK {{ .Attack }}{{ if .Boss }}  PHASE {{ .Phase }}{{ end }}]`

// renderRoom produces the full room block: header, exits, floor items,
// enemy, and the escape-dock hint.
func renderRoom(s *game.Session, room *game.Room) []string {
	header, err := display.Render(roomHeaderTmpl, map[string]any{
		"Name": room.Name,
		"Desc": display.Wrap(room.Describe()),
	})
	if err != nil {
		slog.Error("rendering room header", "error", err)
		header = room.Name
	}
	lines := strings.Split(header, "\n")

	if room.Dark {
		lines = append(lines, "It is pitch dark. Whatever is in here, you cannot see it.")
	}

	var exits []string
	for _, dir := range exitOrder {
		exit, ok := room.Exits[dir]
		if !ok {
			continue
		}
		if exit.Locked() && !s.Player.Has(exit.Requires) {
			exits = append(exits, dir+" (sealed)")
		} else {
			exits = append(exits, dir)
		}
	}
	if len(exits) > 0 {
		lines = append(lines, "Exits: "+strings.Join(exits, ", "))
	} else {
		lines = append(lines, "There is no way out.")
	}

	if !room.Dark && len(room.Items) > 0 {
		var names []string
		for _, id := range room.Items {
			if item := s.World.Item(id); item != nil {
				names = append(names, item.Name)
			}
		}
		lines = append(lines, "On the deck: "+strings.Join(names, ", "))
	}

	lines = append(lines, renderEnemy(room)...)

	if room.IsExit && !s.World.FinalBossDefeated() {
		lines = append(lines, "The pod bay doors are fused shut. The Warden's override keycard would open them.")
	}
	if room.Readable != "" && !room.Dark {
		lines = append(lines, "A data terminal glows here. (read)")
	}

	return lines
}

func renderEnemy(room *game.Room) []string {
	e := room.Enemy
	switch {
	case e == nil:
		return nil
	case room.Dark && !e.Defeated:
		return []string{"Something is breathing in the dark."}
	case e.Defeated:
		return []string{fmt.Sprintf("The husk of the %s lies still.", e.Name)}
	case e.Scanned:
		line, err := display.Render(enemyScanTmpl, map[string]any{
			"Name": e.Name, "HP": e.HP, "MaxHP": e.MaxHP,
			"Attack": e.Attack, "Boss": e.Boss, "Phase": e.Phase(),
		})
		if err != nil {
			return []string{fmt.Sprintf("%s blocks the way.", e.Name)}
		}
		return []string{line}
	default:
		return []string{fmt.Sprintf("%s blocks the way.", e.Name)}
	}
}

// itemName resolves an id to its display name, falling back to the id for
// content drift in old saves.
func itemName(s *game.Session, id string) string {
	if item := s.World.Item(id); item != nil {
		return item.Name
	}
	return id
}
