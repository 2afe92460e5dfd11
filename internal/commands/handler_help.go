package commands

import "github.com/clawedcode/voidmud/internal/game"

var helpText = []string{
	"Movement:  north south east west up down  (or n s e w u d)",
	"Looking:   look, read, scan, map",
	"Items:     take <item>, use <item>, inventory",
	"Fighting:  attack, surge (3), evade (4), scan (2)",
	"Yourself:  stats",
	"Others:    link <code>, say <message>, who",
	"Other:     reset, exit, help",
}

func (h *Handler) help(s *game.Session, _ []string) ([]string, *Action, error) {
	return helpText, nil, nil
}
