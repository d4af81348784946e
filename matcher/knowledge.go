package matcher

import (
	"fmt"

	"medrisk/domain/clinical"
	"medrisk/domain/core"
)

// KnowledgeBase is the static disease/symptom reference the matcher works
// over. Constructed explicitly and passed into the engine at startup, never
// ambient global state, so tests can build isolated instances. Immutable
// after construction; disease declaration order is preserved and used for
// confidence tie-breaking.
type KnowledgeBase struct {
	diseases []clinical.DiseaseDefinition
	symptoms []clinical.SymptomDefinition
	index    map[core.SymptomID]clinical.SymptomDefinition
}

// NewKnowledgeBase validates that every disease references only cataloged
// symptoms and builds the lookup index.
func NewKnowledgeBase(diseases []clinical.DiseaseDefinition, symptoms []clinical.SymptomDefinition) (*KnowledgeBase, error) {
	index := make(map[core.SymptomID]clinical.SymptomDefinition, len(symptoms))
	for _, s := range symptoms {
		if _, dup := index[s.ID]; dup {
			return nil, fmt.Errorf("duplicate symptom definition: %s", s.ID)
		}
		index[s.ID] = s
	}
	for _, d := range diseases {
		if len(d.Symptoms) == 0 {
			return nil, fmt.Errorf("disease %s has no symptoms", d.Name)
		}
		for _, id := range d.Symptoms {
			if _, ok := index[id]; !ok {
				return nil, fmt.Errorf("disease %s references unknown symptom %s", d.Name, id)
			}
		}
	}
	return &KnowledgeBase{diseases: diseases, symptoms: symptoms, index: index}, nil
}

// Diseases returns the definitions in declaration order.
func (kb *KnowledgeBase) Diseases() []clinical.DiseaseDefinition {
	return kb.diseases
}

// Symptoms returns the full symptom catalog.
func (kb *KnowledgeBase) Symptoms() []clinical.SymptomDefinition {
	return kb.symptoms
}

// Symptom looks up one symptom definition.
func (kb *KnowledgeBase) Symptom(id core.SymptomID) (clinical.SymptomDefinition, bool) {
	s, ok := kb.index[id]
	return s, ok
}

// DefaultKnowledgeBase builds the built-in catalog. Panics on an invalid
// table, which is a programming error caught by the package tests.
func DefaultKnowledgeBase() *KnowledgeBase {
	kb, err := NewKnowledgeBase(diseaseCatalog(), symptomCatalog())
	if err != nil {
		panic(fmt.Sprintf("invalid built-in knowledge base: %v", err))
	}
	return kb
}

func symptomCatalog() []clinical.SymptomDefinition {
	return []clinical.SymptomDefinition{
		// General
		{ID: "mild_fever", Label: "Mild fever", Category: "general", Severity: clinical.SeverityMild},
		{ID: "high_fever", Label: "High fever", Category: "general", Severity: clinical.SeverityModerate},
		{ID: "chills", Label: "Chills", Category: "general", Severity: clinical.SeverityMild},
		{ID: "fatigue", Label: "Fatigue", Category: "general", Severity: clinical.SeverityMild},
		{ID: "night_sweats", Label: "Night sweats", Category: "general", Severity: clinical.SeverityModerate},
		{ID: "weight_loss", Label: "Unexplained weight loss", Category: "general", Severity: clinical.SeverityModerate},
		{ID: "weight_gain", Label: "Unexplained weight gain", Category: "general", Severity: clinical.SeverityMild},
		{ID: "sweating", Label: "Profuse sweating", Category: "general", Severity: clinical.SeverityModerate},
		{ID: "loss_of_appetite", Label: "Loss of appetite", Category: "general", Severity: clinical.SeverityMild},
		{ID: "pale_skin", Label: "Pale skin", Category: "general", Severity: clinical.SeverityMild},

		// Respiratory
		{ID: "runny_nose", Label: "Runny nose", Category: "respiratory", Severity: clinical.SeverityMild},
		{ID: "sneezing", Label: "Sneezing", Category: "respiratory", Severity: clinical.SeverityMild},
		{ID: "sore_throat", Label: "Sore throat", Category: "respiratory", Severity: clinical.SeverityMild},
		{ID: "cough", Label: "Cough", Category: "respiratory", Severity: clinical.SeverityMild},
		{ID: "productive_cough", Label: "Productive cough", Category: "respiratory", Severity: clinical.SeverityModerate},
		{ID: "persistent_cough", Label: "Persistent cough (over 3 weeks)", Category: "respiratory", Severity: clinical.SeverityModerate},
		{ID: "coughing_blood", Label: "Coughing blood", Category: "respiratory", Severity: clinical.SeveritySerious},
		{ID: "wheezing", Label: "Wheezing", Category: "respiratory", Severity: clinical.SeverityModerate},
		{ID: "shortness_of_breath", Label: "Shortness of breath", Category: "respiratory", Severity: clinical.SeveritySerious},
		{ID: "chest_tightness", Label: "Chest tightness", Category: "respiratory", Severity: clinical.SeverityModerate},

		// Cardiovascular
		{ID: "chest_pain", Label: "Chest pain", Category: "cardiovascular", Severity: clinical.SeveritySerious},
		{ID: "chest_discomfort", Label: "Chest discomfort", Category: "cardiovascular", Severity: clinical.SeverityModerate},
		{ID: "arm_pain", Label: "Pain radiating to arm or jaw", Category: "cardiovascular", Severity: clinical.SeveritySerious},
		{ID: "palpitations", Label: "Palpitations", Category: "cardiovascular", Severity: clinical.SeverityModerate},
		{ID: "nosebleed", Label: "Nosebleed", Category: "cardiovascular", Severity: clinical.SeverityMild},
		{ID: "cold_extremities", Label: "Cold hands and feet", Category: "cardiovascular", Severity: clinical.SeverityMild},

		// Gastrointestinal
		{ID: "nausea", Label: "Nausea", Category: "gastrointestinal", Severity: clinical.SeverityMild},
		{ID: "vomiting", Label: "Vomiting", Category: "gastrointestinal", Severity: clinical.SeverityModerate},
		{ID: "diarrhea", Label: "Diarrhea", Category: "gastrointestinal", Severity: clinical.SeverityMild},
		{ID: "constipation", Label: "Constipation", Category: "gastrointestinal", Severity: clinical.SeverityMild},
		{ID: "abdominal_pain", Label: "Abdominal pain", Category: "gastrointestinal", Severity: clinical.SeverityModerate},
		{ID: "abdominal_cramps", Label: "Abdominal cramps", Category: "gastrointestinal", Severity: clinical.SeverityMild},
		{ID: "heartburn", Label: "Heartburn", Category: "gastrointestinal", Severity: clinical.SeverityMild},
		{ID: "regurgitation", Label: "Acid regurgitation", Category: "gastrointestinal", Severity: clinical.SeverityMild},
		{ID: "difficulty_swallowing", Label: "Difficulty swallowing", Category: "gastrointestinal", Severity: clinical.SeverityModerate},

		// Neurological
		{ID: "headache", Label: "Headache", Category: "neurological", Severity: clinical.SeverityMild},
		{ID: "severe_headache", Label: "Severe or sudden headache", Category: "neurological", Severity: clinical.SeveritySerious},
		{ID: "dizziness", Label: "Dizziness", Category: "neurological", Severity: clinical.SeverityMild},
		{ID: "confusion", Label: "Confusion", Category: "neurological", Severity: clinical.SeveritySerious},
		{ID: "light_sensitivity", Label: "Light sensitivity", Category: "neurological", Severity: clinical.SeverityModerate},
		{ID: "visual_disturbance", Label: "Visual aura or disturbance", Category: "neurological", Severity: clinical.SeverityModerate},
		{ID: "blurred_vision", Label: "Blurred vision", Category: "neurological", Severity: clinical.SeverityModerate},
		{ID: "vision_loss", Label: "Sudden vision loss", Category: "neurological", Severity: clinical.SeveritySerious},
		{ID: "sudden_numbness", Label: "Sudden numbness or weakness", Category: "neurological", Severity: clinical.SeveritySerious},
		{ID: "facial_droop", Label: "Facial drooping", Category: "neurological", Severity: clinical.SeveritySerious},
		{ID: "slurred_speech", Label: "Slurred speech", Category: "neurological", Severity: clinical.SeveritySerious},
		{ID: "depression", Label: "Low mood", Category: "neurological", Severity: clinical.SeverityMild},

		// Urinary
		{ID: "frequent_urination", Label: "Frequent urination", Category: "urinary", Severity: clinical.SeverityMild},
		{ID: "painful_urination", Label: "Painful urination", Category: "urinary", Severity: clinical.SeverityModerate},
		{ID: "cloudy_urine", Label: "Cloudy or strong-smelling urine", Category: "urinary", Severity: clinical.SeverityMild},
		{ID: "blood_in_urine", Label: "Blood in urine", Category: "urinary", Severity: clinical.SeveritySerious},
		{ID: "dark_urine", Label: "Dark urine", Category: "urinary", Severity: clinical.SeverityModerate},
		{ID: "pelvic_pain", Label: "Pelvic pain", Category: "urinary", Severity: clinical.SeverityModerate},
		{ID: "flank_pain", Label: "Flank pain", Category: "urinary", Severity: clinical.SeverityModerate},

		// Endocrine / metabolic
		{ID: "excessive_thirst", Label: "Excessive thirst", Category: "endocrine", Severity: clinical.SeverityModerate},
		{ID: "increased_hunger", Label: "Increased hunger", Category: "endocrine", Severity: clinical.SeverityMild},
		{ID: "slow_healing", Label: "Slow-healing wounds", Category: "endocrine", Severity: clinical.SeverityModerate},
		{ID: "cold_intolerance", Label: "Cold intolerance", Category: "endocrine", Severity: clinical.SeverityMild},
		{ID: "dry_skin", Label: "Dry skin", Category: "endocrine", Severity: clinical.SeverityMild},

		// Musculoskeletal / hepatic
		{ID: "muscle_pain", Label: "Muscle aches", Category: "musculoskeletal", Severity: clinical.SeverityMild},
		{ID: "jaundice", Label: "Yellowing of skin or eyes", Category: "hepatic", Severity: clinical.SeveritySerious},
	}
}

func diseaseCatalog() []clinical.DiseaseDefinition {
	return []clinical.DiseaseDefinition{
		{
			Name:           "Common Cold",
			Symptoms:       []core.SymptomID{"runny_nose", "sneezing", "sore_throat", "cough", "mild_fever"},
			Severity:       clinical.SeverityMild,
			Specialization: "General Practice",
			Recommendations: []string{
				"Rest and drink plenty of fluids",
				"Use over-the-counter decongestants as needed",
				"See a doctor if symptoms persist beyond 10 days",
			},
		},
		{
			Name:           "Seasonal Influenza",
			Symptoms:       []core.SymptomID{"high_fever", "chills", "muscle_pain", "fatigue", "cough", "headache"},
			Severity:       clinical.SeverityModerate,
			HighRiskAges:   &clinical.AgeBand{Min: 65, Max: 120},
			Specialization: "General Practice",
			Recommendations: []string{
				"Rest at home and stay hydrated",
				"Antiviral treatment is most effective within 48 hours of onset",
				"Seek care if breathing becomes difficult",
			},
		},
		{
			Name:            "Migraine",
			Symptoms:        []core.SymptomID{"severe_headache", "nausea", "light_sensitivity", "visual_disturbance"},
			Severity:        clinical.SeverityModerate,
			GenderModifiers: map[clinical.Gender]float64{clinical.GenderFemale: 1.15},
			Specialization:  "Neurology",
			Recommendations: []string{
				"Rest in a dark, quiet room",
				"Keep a headache diary to identify triggers",
				"Discuss preventive medication if attacks are frequent",
			},
		},
		{
			Name:           "Hypertension",
			Symptoms:       []core.SymptomID{"headache", "dizziness", "blurred_vision", "nosebleed", "chest_discomfort"},
			Severity:       clinical.SeverityModerate,
			HighRiskAges:   &clinical.AgeBand{Min: 40, Max: 120},
			Specialization: "Cardiology",
			Recommendations: []string{
				"Measure blood pressure on several different days",
				"Reduce dietary sodium and alcohol intake",
				"Schedule a cardiovascular risk review",
			},
		},
		{
			Name: "Type 2 Diabetes",
			Symptoms: []core.SymptomID{
				"frequent_urination", "excessive_thirst", "increased_hunger",
				"fatigue", "blurred_vision", "slow_healing",
			},
			Severity:       clinical.SeverityModerate,
			HighRiskAges:   &clinical.AgeBand{Min: 40, Max: 120},
			Specialization: "Endocrinology",
			Recommendations: []string{
				"Request fasting glucose and HbA1c testing",
				"Review diet and physical activity with your physician",
				"Monitor for vision changes and slow-healing wounds",
			},
		},
		{
			Name:           "Asthma",
			Symptoms:       []core.SymptomID{"wheezing", "shortness_of_breath", "chest_tightness", "cough"},
			Severity:       clinical.SeverityModerate,
			Specialization: "Pulmonology",
			Recommendations: []string{
				"Request spirometry testing",
				"Identify and avoid personal triggers",
				"Carry a rescue inhaler once prescribed",
			},
		},
		{
			Name: "Pneumonia",
			Symptoms: []core.SymptomID{
				"high_fever", "productive_cough", "chest_pain",
				"shortness_of_breath", "chills", "fatigue",
			},
			Severity:       clinical.SeveritySerious,
			HighRiskAges:   &clinical.AgeBand{Min: 65, Max: 120},
			Specialization: "Pulmonology",
			Recommendations: []string{
				"Seek medical evaluation today",
				"A chest X-ray is needed to confirm the diagnosis",
				"Complete the full course of any prescribed antibiotics",
			},
		},
		{
			Name: "Myocardial Infarction",
			Symptoms: []core.SymptomID{
				"chest_pain", "arm_pain", "shortness_of_breath",
				"sweating", "nausea", "dizziness",
			},
			Severity:     clinical.SeveritySerious,
			HighRiskAges: &clinical.AgeBand{Min: 45, Max: 120},
			GenderModifiers: map[clinical.Gender]float64{
				clinical.GenderMale:   1.2,
				clinical.GenderFemale: 0.9,
			},
			Specialization: "Cardiology",
			Recommendations: []string{
				"Call emergency services immediately",
				"Chew an aspirin if not allergic while waiting for help",
				"Do not drive yourself to the hospital",
			},
		},
		{
			Name: "Stroke",
			Symptoms: []core.SymptomID{
				"sudden_numbness", "facial_droop", "slurred_speech",
				"vision_loss", "severe_headache", "confusion",
			},
			Severity:       clinical.SeveritySerious,
			HighRiskAges:   &clinical.AgeBand{Min: 55, Max: 120},
			Specialization: "Neurology",
			Recommendations: []string{
				"Call emergency services immediately",
				"Note the time symptoms started",
				"Do not eat, drink, or take medication until assessed",
			},
		},
		{
			Name:           "Appendicitis",
			Symptoms:       []core.SymptomID{"abdominal_pain", "nausea", "vomiting", "loss_of_appetite", "mild_fever"},
			Severity:       clinical.SeveritySerious,
			HighRiskAges:   &clinical.AgeBand{Min: 10, Max: 30},
			Specialization: "General Surgery",
			Recommendations: []string{
				"Go to an emergency department for evaluation",
				"Do not eat or drink until assessed",
				"Avoid painkillers that could mask symptom progression",
			},
		},
		{
			Name:           "Gastroenteritis",
			Symptoms:       []core.SymptomID{"diarrhea", "vomiting", "abdominal_cramps", "nausea", "mild_fever"},
			Severity:       clinical.SeverityMild,
			Specialization: "General Practice",
			Recommendations: []string{
				"Take small, frequent sips of oral rehydration solution",
				"Reintroduce bland foods gradually",
				"Seek care if symptoms last beyond 3 days or dehydration develops",
			},
		},
		{
			Name:           "Gastroesophageal Reflux",
			Symptoms:       []core.SymptomID{"heartburn", "regurgitation", "chest_discomfort", "difficulty_swallowing"},
			Severity:       clinical.SeverityMild,
			Specialization: "Gastroenterology",
			Recommendations: []string{
				"Avoid eating within 3 hours of lying down",
				"Limit caffeine, alcohol, and fatty foods",
				"Discuss acid-suppression therapy if symptoms recur weekly",
			},
		},
		{
			Name:     "Urinary Tract Infection",
			Symptoms: []core.SymptomID{"painful_urination", "frequent_urination", "cloudy_urine", "pelvic_pain"},
			Severity: clinical.SeverityModerate,
			GenderModifiers: map[clinical.Gender]float64{
				clinical.GenderFemale: 1.3,
				clinical.GenderMale:   0.8,
			},
			Specialization: "Urology",
			Recommendations: []string{
				"Request a urinalysis and urine culture",
				"Drink plenty of water",
				"Seek prompt care if fever or back pain develops",
			},
		},
		{
			Name:            "Kidney Stones",
			Symptoms:        []core.SymptomID{"flank_pain", "blood_in_urine", "painful_urination", "nausea"},
			Severity:        clinical.SeverityModerate,
			GenderModifiers: map[clinical.Gender]float64{clinical.GenderMale: 1.2},
			Specialization:  "Urology",
			Recommendations: []string{
				"Increase fluid intake significantly",
				"Strain urine to catch passed stones for analysis",
				"Seek urgent care for unmanageable pain or fever",
			},
		},
		{
			Name: "Viral Hepatitis",
			Symptoms: []core.SymptomID{
				"jaundice", "dark_urine", "abdominal_pain",
				"fatigue", "nausea", "loss_of_appetite",
			},
			Severity:       clinical.SeveritySerious,
			Specialization: "Hepatology",
			Recommendations: []string{
				"Request liver function tests and hepatitis serology",
				"Avoid alcohol and hepatotoxic medications entirely",
				"Household contacts may need screening or vaccination",
			},
		},
		{
			Name: "Iron-Deficiency Anemia",
			Symptoms: []core.SymptomID{
				"fatigue", "pale_skin", "dizziness",
				"shortness_of_breath", "cold_extremities",
			},
			Severity:        clinical.SeverityMild,
			GenderModifiers: map[clinical.Gender]float64{clinical.GenderFemale: 1.2},
			Specialization:  "Hematology",
			Recommendations: []string{
				"Request a complete blood count and ferritin level",
				"Increase dietary iron alongside vitamin C",
				"Investigate the underlying cause with your physician",
			},
		},
		{
			Name: "Hypothyroidism",
			Symptoms: []core.SymptomID{
				"fatigue", "weight_gain", "cold_intolerance",
				"dry_skin", "depression", "constipation",
			},
			Severity:        clinical.SeverityModerate,
			HighRiskAges:    &clinical.AgeBand{Min: 30, Max: 65},
			GenderModifiers: map[clinical.Gender]float64{clinical.GenderFemale: 1.25},
			Specialization:  "Endocrinology",
			Recommendations: []string{
				"Request TSH and free T4 testing",
				"Review any family history of thyroid disease",
				"Recheck thyroid function after any dose change",
			},
		},
		{
			Name: "Tuberculosis",
			Symptoms: []core.SymptomID{
				"persistent_cough", "coughing_blood", "night_sweats",
				"weight_loss", "fatigue", "mild_fever",
			},
			Severity:       clinical.SeveritySerious,
			Specialization: "Infectious Disease",
			Recommendations: []string{
				"Seek medical evaluation promptly and mention TB exposure risk",
				"A chest X-ray and sputum test are required",
				"Limit close contact with others until assessed",
			},
		},
	}
}
