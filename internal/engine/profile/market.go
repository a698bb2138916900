package profile

import (
	"math"
	"strings"
)

const (
	demandReference   = 5.0
	rarityReference   = 3.0
	industryReference = 4.0
	skillBuckets      = 6.0
)

var competitiveByLevel = map[string]string{
	LevelEntry:     CompetitiveJunior,
	LevelMid:       CompetitiveMid,
	LevelSenior:    CompetitiveSenior,
	LevelLead:      CompetitiveExpert,
	LevelExecutive: CompetitiveExpert,
}

func (p *Parser) assessMarket(prof *Profile) Market {
	t := p.lib.Tables()
	have := p.canonicalSkills(prof.Skills.All)

	count := func(ref []string) int {
		n := 0
		for _, s := range ref {
			if have[strings.ToLower(s)] {
				n++
			}
		}
		return n
	}

	var combos []string
	for _, pair := range t.SkillPairs {
		if have[strings.ToLower(pair[0])] && have[strings.ToLower(pair[1])] {
			combos = append(combos, pair[0]+" + "+pair[1])
		}
	}

	industries := math.Min(float64(len(prof.Experience.Industries)), industryReference) / industryReference
	versatility := float64(prof.Skills.nonEmptyBuckets())/skillBuckets*0.6 + industries*0.4

	level, ok := competitiveByLevel[prof.Experience.Level]
	if !ok {
		level = CompetitiveJunior
	}
	return Market{
		CompetitiveLevel:   level,
		UniqueCombinations: combos,
		MarketDemand:       unit(float64(count(t.HighDemandSkills)) / demandReference),
		Rarity:             unit(float64(count(t.RareSkills)) / rarityReference),
		Versatility:        unit(versatility),
	}
}

// unit clamps v to [0,1].
func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
