// Package calibration holds the fixed per-disease configuration tables:
// feature orders, hand-calibrated reference ranges, threshold rules,
// score boundaries and recommendation tiers. Values are illustrative
// domain heuristics taken from clinical reference ranges; nothing here is
// derived from the training data.
package calibration

import (
	"medrisk/domain/core"
	"medrisk/engine"
)

// Registered disease keys.
const (
	KeyCardiac   core.DiseaseKey = "cardiac"
	KeyMetabolic core.DiseaseKey = "metabolic"
	KeyRenal     core.DiseaseKey = "renal"
	KeyHepatic   core.DiseaseKey = "hepatic"
	KeyOncologic core.DiseaseKey = "oncologic"
)

// All returns every disease calibration in registration order.
func All() []engine.ModelConfig {
	return []engine.ModelConfig{
		Cardiac(),
		Metabolic(),
		Renal(),
		Hepatic(),
		Oncologic(),
	}
}
