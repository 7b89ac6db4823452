package training

// oshaBaseline is the mandatory OSHA curriculum every organization carries.
var oshaBaseline = []string{
	"Hazard Communication",
	"Emergency Action Plan",
	"Fire Prevention",
	"Personal Protective Equipment",
	"Lockout/Tagout",
	"Electrical Safety",
	"Machine Guarding",
	"Bloodborne Pathogens",
	"Confined Space",
	"Fall Protection",
	"Respiratory Protection",
	"Hearing Conservation",
}

var industryCurricula = map[string][]string{
	"construction": {
		"Scaffold Safety",
		"Excavation Safety",
		"Crane Safety",
		"Steel Erection",
		"Powered Industrial Trucks",
	},
	"manufacturing": {
		"Process Safety Management",
		"Machine Safety",
		"Chemical Safety",
		"Noise Control",
		"Ergonomics",
	},
	"healthcare": {
		"Infection Control",
		"Sharps Safety",
		"Patient Handling",
		"Radiation Safety",
		"Laboratory Safety",
	},
	"oil_gas": {
		"Process Safety",
		"H2S Safety",
		"Well Control",
		"Offshore Safety",
		"Hot Work",
	},
	"transportation": {
		"Defensive Driving",
		"Hazardous Materials",
		"Hours of Service",
		"Vehicle Maintenance",
		"Loading/Unloading",
	},
}

var regulationCurricula = map[Regulation][]string{
	RegulationISO45001: {
		"OH&S Management System",
		"Risk Assessment Training",
		"Incident Investigation",
	},
	RegulationRCRA: {
		"Hazardous Waste Management",
		"Waste Minimization",
	},
	RegulationDOT: {
		"Hazardous Materials Transportation",
	},
}

var largeCompanyRecommended = []string{
	"Safety Leadership Training",
	"Behavior-Based Safety",
	"Root Cause Analysis",
	"Audit and Inspection",
}

var highTurnoverRecommended = []string{
	"New Employee Orientation",
	"Mentorship Program",
	"On-the-Job Training",
}

// newHires above this fraction of the workforce triggers onboarding modules
const highTurnoverFraction = 0.1

// baseHours is the delivery time per module. Modules not listed take the
// default.
var baseHours = map[string]float64{
	"Hazard Communication":               4,
	"Emergency Action Plan":              2,
	"Fire Prevention":                    2,
	"Personal Protective Equipment":      4,
	"Lockout/Tagout":                     8,
	"Electrical Safety":                  8,
	"Machine Guarding":                   4,
	"Bloodborne Pathogens":               4,
	"Confined Space":                     8,
	"Fall Protection":                    8,
	"Respiratory Protection":             8,
	"Hearing Conservation":               2,
	"Scaffold Safety":                    8,
	"Excavation Safety":                  8,
	"Crane Safety":                       16,
	"Steel Erection":                     8,
	"Powered Industrial Trucks":          8,
	"Process Safety Management":          16,
	"Machine Safety":                     8,
	"Chemical Safety":                    8,
	"Noise Control":                      4,
	"Ergonomics":                         4,
	"Infection Control":                  4,
	"Sharps Safety":                      2,
	"Patient Handling":                   8,
	"Radiation Safety":                   16,
	"Laboratory Safety":                  8,
	"Process Safety":                     16,
	"H2S Safety":                         8,
	"Well Control":                       40,
	"Offshore Safety":                    16,
	"Hot Work":                           4,
	"Defensive Driving":                  8,
	"Hazardous Materials":                8,
	"Hours of Service":                   4,
	"Vehicle Maintenance":                4,
	"Loading/Unloading":                  4,
	"OH&S Management System":             16,
	"Risk Assessment Training":           8,
	"Incident Investigation":             8,
	"Hazardous Waste Management":         8,
	"Waste Minimization":                 4,
	"Hazardous Materials Transportation": 16,
	"Safety Leadership Training":         16,
	"Behavior-Based Safety":              8,
	"Root Cause Analysis":                8,
	"Audit and Inspection":               8,
	"New Employee Orientation":           8,
	"Mentorship Program":                 4,
	"On-the-Job Training":                40,
}

const defaultModuleHours = 4

var experienceFactors = map[Experience]float64{
	ExperienceNovice:       1.5,
	ExperienceIntermediate: 1.0,
	ExperienceExperienced:  0.8,
	ExperienceExpert:       0.6,
}

const certificationPrepHours = 40

// trainingCycleYears spreads total hours and costs over the program cycle
const trainingCycleYears = 3

// methodHourlyRates are the combined delivery cost components per training
// hour (instructor, platform, materials, facility, travel or support).
var methodHourlyRates = map[Method]float64{
	MethodInPerson: 250,
	MethodOnline:   190,
	MethodBlended:  170,
	MethodOnTheJob: 135,
}

const (
	averageWagePerHour     = 50
	burdenedRatePerHour    = 35
	developmentRatePerHour = 150
)

var methodEffectiveness = map[Method]float64{
	MethodInPerson: 0.85,
	MethodBlended:  0.90,
	MethodOnline:   0.75,
	MethodOnTheJob: 0.80,
}

const defaultMethodEffectiveness = 0.75

var frequencyEffectiveness = map[Frequency]float64{
	FrequencyDaily:     0.95,
	FrequencyWeekly:    0.90,
	FrequencyMonthly:   0.85,
	FrequencyQuarterly: 0.80,
	FrequencyYearly:    0.70,
	FrequencyAsNeeded:  0.60,
}

const defaultFrequencyEffectiveness = 0.70

var minimumAnnualHours = map[Location]float64{
	LocationUSA:       10,
	LocationEU:        8,
	LocationCanada:    12,
	LocationAustralia: 10,
	LocationUK:        8,
}

const defaultMinimumAnnualHours = 8

const oshaRecommendedTotalHours = 40

var averageInjuryCost = map[string]float64{
	"construction":   75000,
	"manufacturing":  50000,
	"healthcare":     40000,
	"oil_gas":        100000,
	"transportation": 60000,
	"general":        40000,
}

const (
	injuryReductionRate       = 0.3
	baselineInjuryRate        = 0.05
	employeeReplacementCost   = 15000
	turnoverReductionRate     = 0.2
	productivityGainRate      = 0.05
	averageAnnualSalary       = 50000
	highCostProgramThreshold  = 100000
	excellentROIThreshold     = 100
	weakROIThreshold          = 50
)

// departmentNeeds maps a department to its targeted curriculum.
var departmentNeeds = map[string][]string{
	"production":  {"Machine Safety", "Lockout/Tagout", "PPE", "Emergency Procedures"},
	"maintenance": {"Confined Space", "Electrical Safety", "Hot Work", "Fall Protection"},
	"laboratory":  {"Chemical Safety", "Laboratory Safety", "Emergency Response", "Waste Management"},
	"warehouse":   {"Powered Industrial Trucks", "Material Handling", "Fire Safety", "Ergonomics"},
	"office":      {"Ergonomics", "Emergency Evacuation", "First Aid", "Workplace Violence"},
}

var generalDepartmentNeeds = []string{
	"General Safety Awareness", "Emergency Procedures", "PPE",
}

var highRiskNeeds = []string{
	"Risk Assessment", "Incident Investigation", "Safety Leadership",
}

var frequentIncidentNeeds = []string{
	"Root Cause Analysis", "Behavior-Based Safety", "Safety Observation",
}

var significantGapNeeds = []string{
	"On-the-Job Training", "Mentorship Program", "Skills Assessment",
}
