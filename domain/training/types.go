package training

import (
	"safetycalc/domain/core"
)

type CompanySize string

const (
	SizeSmall     CompanySize = "small"
	SizeMedium    CompanySize = "medium"
	SizeLarge     CompanySize = "large"
	SizeVeryLarge CompanySize = "very_large"
)

type Location string

const (
	LocationUSA       Location = "usa"
	LocationEU        Location = "eu"
	LocationCanada    Location = "canada"
	LocationAustralia Location = "australia"
	LocationUK        Location = "uk"
)

type Experience string

const (
	ExperienceNovice       Experience = "novice"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceExperienced  Experience = "experienced"
	ExperienceExpert       Experience = "expert"
)

type Method string

const (
	MethodInPerson Method = "in-person"
	MethodOnline   Method = "online"
	MethodBlended  Method = "blended"
	MethodOnTheJob Method = "on-the-job"
)

type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
	FrequencyAsNeeded  Frequency = "as-needed"
)

type Regulation string

const (
	RegulationOSHA     Regulation = "osha"
	RegulationISO45001 Regulation = "iso45001"
	RegulationRCRA     Regulation = "rcra"
	RegulationDOT      Regulation = "dot"
)

// Input describes the organization whose training program is assessed.
type Input struct {
	CompanySize           CompanySize
	Industry              string
	Location              Location
	TotalEmployees        int
	NewHires              int
	TurnoverRate          float64 // annual fraction of workforce, 0..1
	ExperienceLevel       Experience
	CurrentTrainingHours  float64 // hours delivered per employee per year
	TrainingFrequency     Frequency
	TrainingMethod        Method
	CertificationRequired bool
	Regulations           []Regulation
}

// Needs is the set of training modules the organization must and should run.
type Needs struct {
	Mandatory        []string
	Recommended      []string
	TotalModules     int
	MandatoryCount   int
	RecommendedCount int
}

// Hours breaks required training hours down by obligation.
type Hours struct {
	Mandatory            float64
	Recommended          float64
	Certification        float64
	Total                float64
	AnnualPerEmployee    float64
	QuarterlyPerEmployee float64
}

// Costs is the projected program cost over a three year cycle.
type Costs struct {
	Direct       float64
	Productivity float64
	Employee     float64
	Development  float64
	Total        float64
	PerEmployee  float64
	Annual       float64
	Method       Method
}

// Effectiveness scores the current program against the required one.
type Effectiveness struct {
	Level           string
	Description     string
	Score           float64
	Coverage        float64
	MethodFactor    float64
	FrequencyFactor float64
}

// Compliance extends the shared report with documentation obligations.
type Compliance struct {
	core.ComplianceReport
	Documentation []string
	MinimumHours  float64
}

// ROI is the projected return over a three year cycle.
type ROI struct {
	InjurySavings       float64
	TurnoverSavings     float64
	ProductivitySavings float64
	TotalBenefits       float64
	Percent             float64
	PaybackYears        float64
	CostBenefitRatio    float64
}

// Phase is one stage of the rollout plan.
type Phase struct {
	Name      string
	Duration  string
	Trainings []string
	Hours     float64
	Priority  string
}

// Plan is the phased rollout with its supporting needs.
type Plan struct {
	Phases     []Phase
	Timeline   map[string]string
	Resources  []string
	Evaluation []string
}

// Result is the complete training program assessment.
type Result struct {
	core.Meta
	Input           Input
	Needs           Needs
	Hours           Hours
	Costs           Costs
	Effectiveness   Effectiveness
	Compliance      Compliance
	ROI             ROI
	Plan            Plan
	Recommendations core.Recommendations
}

// NeedsInput describes one department for a targeted needs assessment.
type NeedsInput struct {
	Department      string
	RiskLevel       string // low, medium, high
	IncidentHistory string // none, occasional, frequent
	SkillGaps       string // minimal, moderate, significant
}

// NeedsResult is the outcome of a department needs assessment.
type NeedsResult struct {
	core.Meta
	Input           NeedsInput
	Needs           []string
	Recommendations core.Recommendations
}
