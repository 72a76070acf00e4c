package validation

import (
	"github.com/ossa-dev/ossa/pkg/constants"
	"github.com/ossa-dev/ossa/pkg/parser"
)

// levelRule is one entry in the ordered certification rule list. Rules are
// evaluated top to bottom with early return; the gold rule must stay ahead of
// silver so the four-of-four check wins the tie-break.
type levelRule struct {
	level   string
	applies func(parser.SectionPresence) bool
}

var levelRules = []levelRule{
	{
		level: constants.LevelGold,
		applies: func(s parser.SectionPresence) bool {
			return s.Security && s.Performance && s.Compliance && s.API
		},
	},
	{
		level: constants.LevelSilver,
		applies: func(s parser.SectionPresence) bool {
			return (s.Security || s.Performance) && s.API
		},
	},
}

// DetermineLevel derives the advisory bronze/silver/gold certification tier
// from the presence of the optional manifest sections. The tier is a maturity
// heuristic, fully independent of structural validity.
func DetermineLevel(manifest *parser.Manifest) string {
	sections := manifest.Sections()
	if !sections.Spec {
		return constants.LevelBronze
	}
	for _, rule := range levelRules {
		if rule.applies(sections) {
			return rule.level
		}
	}
	return constants.LevelBronze
}
