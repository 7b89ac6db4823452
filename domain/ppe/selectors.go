package ppe

// Each selector walks its priority ladder over the hazard set and returns
// the single best-matching item for the category.

func hasHazard(hazards []Hazard, t HazardType) bool {
	for _, h := range hazards {
		if h.Type == t {
			return true
		}
	}
	return false
}

func hazardSeverity(hazards []Hazard, types ...HazardType) Severity {
	for _, h := range hazards {
		for _, t := range types {
			if h.Type == t {
				return h.Severity
			}
		}
	}
	return SeverityLow
}

func selectHeadProtection(hazards []Hazard) Item {
	switch {
	case hasHazard(hazards, HazardElectrical):
		return Item{
			Type:            "Class E Hard Hat",
			Description:     "Electrical hazard protection (20,000V)",
			Standard:        "ANSI/ISEA Z89.1 Class E",
			ProtectionLevel: "High",
		}
	case hasHazard(hazards, HazardChemical):
		return Item{
			Type:            "Bump Cap with Face Shield",
			Description:     "Chemical splash protection",
			Standard:        "ANSI/ISEA Z89.1 Type 1",
			ProtectionLevel: "Medium",
		}
	case hasHazard(hazards, HazardMechanical):
		return Item{
			Type:            "Type II Hard Hat",
			Description:     "Lateral impact protection",
			Standard:        "ANSI/ISEA Z89.1 Type II",
			ProtectionLevel: "High",
		}
	default:
		return Item{
			Type:            "Basic Hard Hat",
			Description:     "General head protection",
			Standard:        "ANSI/ISEA Z89.1 Type I",
			ProtectionLevel: "Low",
		}
	}
}

func selectEyeProtection(hazards []Hazard) Item {
	switch {
	case hasHazard(hazards, HazardChemical):
		return Item{
			Type:            "Chemical Splash Goggles",
			Description:     "Sealed splash protection",
			Standard:        "ANSI Z87.1 D3",
			ProtectionLevel: "High",
		}
	case hasHazard(hazards, HazardMechanical):
		return Item{
			Type:            "Safety Glasses with Side Shields",
			Description:     "Impact protection",
			Standard:        "ANSI Z87.1+",
			ProtectionLevel: "Medium",
		}
	case hasHazard(hazards, HazardRadiological):
		return Item{
			Type:            "Welding Helmet",
			Description:     "UV/IR radiation protection",
			Standard:        "ANSI Z87.1 & Z49.1",
			ProtectionLevel: "High",
		}
	default:
		return Item{
			Type:            "Basic Safety Glasses",
			Description:     "General eye protection",
			Standard:        "ANSI Z87.1",
			ProtectionLevel: "Low",
		}
	}
}

func selectHearingProtection(hazards []Hazard) Item {
	if hazardSeverity(hazards, HazardMechanical) == SeverityHigh {
		return Item{
			Type:            "Earmuffs over Foam Earplugs",
			Description:     "Dual protection, NRR 30+ combined",
			Standard:        "ANSI S3.19 / ANSI S12.6",
			ProtectionLevel: "High",
		}
	}
	return Item{
		Type:            "Foam Earplugs",
		Description:     "Disposable, NRR 29",
		Standard:        "ANSI S3.19",
		ProtectionLevel: "Medium",
	}
}

func selectRespiratoryProtection(hazards []Hazard) Item {
	hasChemical := hasHazard(hazards, HazardChemical)
	hasBiological := hasHazard(hazards, HazardBiological)
	severity := hazardSeverity(hazards, HazardChemical, HazardBiological)

	switch {
	case severity == SeverityHigh || (hasChemical && hasBiological):
		return Item{
			Type:             "PAPR with Full Facepiece",
			Description:      "Powered Air Purifying Respirator",
			Standard:         "NIOSH 42 CFR 84",
			ProtectionLevel:  "Very High",
			ProtectionFactor: 1000,
		}
	case severity == SeverityMedium:
		return Item{
			Type:             "Half Mask Respirator with Cartridges",
			Description:      "Chemical/organic vapor protection",
			Standard:         "NIOSH 42 CFR 84",
			ProtectionLevel:  "High",
			ProtectionFactor: 10,
		}
	case hasChemical || hasBiological:
		return Item{
			Type:             "N95 Respirator",
			Description:      "Particulate filtration",
			Standard:         "NIOSH 42 CFR 84",
			ProtectionLevel:  "Medium",
			ProtectionFactor: 10,
		}
	default:
		return Item{
			Type:             "Disposable Dust Mask",
			Description:      "Light dust protection",
			Standard:         "NIOSH 42 CFR 84",
			ProtectionLevel:  "Low",
			ProtectionFactor: 5,
		}
	}
}

func selectHandProtection(hazards []Hazard, temperature float64) Item {
	ambient := formatTemp(temperature)
	switch {
	case hasHazard(hazards, HazardChemical):
		return Item{
			Type:            "Chemical Resistant Gloves",
			Description:     "Nitrile or neoprene, 18 mil thickness",
			Standard:        "ANSI/ISEA 105-2016",
			ProtectionLevel: "High",
			TempRating:      ambient,
		}
	case hasHazard(hazards, HazardMechanical):
		return Item{
			Type:            "Cut Resistant Gloves",
			Description:     "Level 5 cut protection",
			Standard:        "ANSI/ISEA 105-2016 A9",
			ProtectionLevel: "High",
			TempRating:      ambient,
		}
	case hasHazard(hazards, HazardThermal):
		return Item{
			Type:            "Heat Resistant Gloves",
			Description:     "Kevlar/leather, 500°F rating",
			Standard:        "ANSI/ISEA 105-2016",
			ProtectionLevel: "High",
			TempRating:      "High",
		}
	case temperature < 10:
		return Item{
			Type:            "Insulated Gloves",
			Description:     "Cold weather protection",
			Standard:        "ANSI/ISEA 105-2016",
			ProtectionLevel: "Medium",
			TempRating:      "Low",
		}
	default:
		return Item{
			Type:            "General Purpose Gloves",
			Description:     "Leather or fabric",
			Standard:        "ANSI/ISEA 105-2016",
			ProtectionLevel: "Low",
			TempRating:      ambient,
		}
	}
}

func selectFootProtection(hazards []Hazard) Item {
	switch {
	case hasHazard(hazards, HazardElectrical):
		return Item{
			Type:            "Electrical Hazard Boots",
			Description:     "EH rated, non-conductive sole",
			Standard:        "ASTM F2413 EH",
			ProtectionLevel: "High",
		}
	case hasHazard(hazards, HazardChemical):
		return Item{
			Type:            "Chemical Resistant Boots",
			Description:     "PVC or nitrile, liquid tight",
			Standard:        "ASTM F2413",
			ProtectionLevel: "High",
		}
	default:
		return Item{
			Type:            "Steel Toe Boots",
			Description:     "Impact and compression protection",
			Standard:        "ASTM F2413 I/C",
			ProtectionLevel: "Medium",
		}
	}
}

func selectBodyProtection(hazards []Hazard, temperature float64) Item {
	switch {
	case hasHazard(hazards, HazardChemical) || hasHazard(hazards, HazardBiological):
		return Item{
			Type:            "Chemical Protective Coverall",
			Description:     "Type 3/4 with sealed seams",
			Standard:        "NFPA 1991/1992",
			ProtectionLevel: "High",
			Material:        "Tychem or similar",
		}
	case hasHazard(hazards, HazardThermal):
		return Item{
			Type:            "Flame Resistant Coverall",
			Description:     "Arc flash protection",
			Standard:        "NFPA 70E",
			ProtectionLevel: "High",
			Material:        "Nomex or FR cotton",
		}
	case temperature > 30:
		return Item{
			Type:            "Cooling Vest",
			Description:     "Heat stress prevention",
			Standard:        "General Use",
			ProtectionLevel: "Medium",
			Material:        "Mesh with cooling packs",
		}
	case temperature < 5:
		return Item{
			Type:            "Insulated Jacket",
			Description:     "Cold weather protection",
			Standard:        "General Use",
			ProtectionLevel: "Medium",
			Material:        "Insulated synthetic",
		}
	default:
		return Item{
			Type:            "High Visibility Vest",
			Description:     "Visibility enhancement",
			Standard:        "ANSI/ISEA 107-2020",
			ProtectionLevel: "Low",
			Material:        "Fluorescent mesh",
		}
	}
}

func selectFallArrest(hazards []Hazard) Item {
	if hazardSeverity(hazards, HazardFall) == SeverityHigh {
		return Item{
			Type:            "Full Body Harness with Shock-Absorbing Lanyard",
			Description:     "Personal fall arrest system",
			Standard:        "ANSI Z359.11",
			ProtectionLevel: "High",
		}
	}
	return Item{
		Type:            "Positioning Harness with Restraint Lanyard",
		Description:     "Fall restraint system",
		Standard:        "ANSI Z359.3",
		ProtectionLevel: "Medium",
	}
}
