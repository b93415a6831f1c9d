package domain

import "time"

// Course is a flat catalog record ingested from tabular uploads. UniqueID is
// the externally supplied identifier from the source file; ID is generated at
// ingestion time and shared between the document store and the search index.
//
// Optional numeric fields are pointers so that "not provided" survives the
// round trip instead of collapsing to zero.
type Course struct {
	ID       string `json:"id" bson:"_id"`
	UniqueID string `json:"uniqueId" bson:"uniqueId"`

	CourseName     string `json:"courseName" bson:"courseName"`
	CourseCode     string `json:"courseCode" bson:"courseCode"`
	UniversityCode string `json:"universityCode" bson:"universityCode"`
	UniversityName string `json:"universityName" bson:"universityName"`
	Department     string `json:"department" bson:"department"`
	Discipline     string `json:"discipline" bson:"discipline"`
	Specialization string `json:"specialization" bson:"specialization"`
	CourseLevel    string `json:"courseLevel" bson:"courseLevel"`

	Overview            string   `json:"overview" bson:"overview"`
	Summary             string   `json:"summary" bson:"summary"`
	Prerequisites       []string `json:"prerequisites" bson:"prerequisites"`
	LearningOutcomes    []string `json:"learningOutcomes" bson:"learningOutcomes"`
	TeachingMethodology string   `json:"teachingMethodology" bson:"teachingMethodology"`
	AssessmentMethods   []string `json:"assessmentMethods" bson:"assessmentMethods"`

	Credits               int      `json:"credits" bson:"credits"`
	DurationMonths        int      `json:"duration" bson:"duration"`
	LanguageOfInstruction string   `json:"languageOfInstruction" bson:"languageOfInstruction"`
	SyllabusURL           string   `json:"syllabusUrl" bson:"syllabusUrl"`
	Keywords              []string `json:"keywords" bson:"keywords"`

	ProfessorName  string `json:"professorName" bson:"professorName"`
	ProfessorEmail string `json:"professorEmail" bson:"professorEmail"`
	OfficeLocation string `json:"officeLocation" bson:"officeLocation"`

	OpenForIntake      string   `json:"openForIntake" bson:"openForIntake"`
	AdmissionOpenYears []string `json:"admissionOpenYears" bson:"admissionOpenYears"`
	AttendanceType     string   `json:"attendanceType" bson:"attendanceType"`

	FirstYearTuitionFee    float64 `json:"firstYearTuitionFee" bson:"firstYearTuitionFee"`
	TotalTuitionFee        float64 `json:"totalTuitionFee" bson:"totalTuitionFee"`
	TuitionFeeCurrency     string  `json:"tuitionFeeCurrency" bson:"tuitionFeeCurrency"`
	ApplicationFeeAmount   float64 `json:"applicationFeeAmount" bson:"applicationFeeAmount"`
	ApplicationFeeCurrency string  `json:"applicationFeeCurrency" bson:"applicationFeeCurrency"`
	ApplicationFeeWaived   bool    `json:"applicationFeeWaived" bson:"applicationFeeWaived"`

	RequiredApplicationMaterials   []string `json:"requiredApplicationMaterials" bson:"requiredApplicationMaterials"`
	TwelfthGradeRequirement        string   `json:"twelfthGradeRequirement" bson:"twelfthGradeRequirement"`
	UndergraduateDegreeRequirement string   `json:"undergraduateDegreeRequirement" bson:"undergraduateDegreeRequirement"`

	MinimumIELTSScore            *float64 `json:"minimumIELTSScore,omitempty" bson:"minimumIELTSScore,omitempty"`
	MinimumTOEFLScore            *float64 `json:"minimumTOEFLScore,omitempty" bson:"minimumTOEFLScore,omitempty"`
	MinimumPTEScore              *float64 `json:"minimumPTEScore,omitempty" bson:"minimumPTEScore,omitempty"`
	MinimumDuolingoScore         *float64 `json:"minimumDuolingoScore,omitempty" bson:"minimumDuolingoScore,omitempty"`
	MinimumCambridgeEnglishScore *float64 `json:"minimumCambridgeEnglishScore,omitempty" bson:"minimumCambridgeEnglishScore,omitempty"`
	OtherEnglishTestsAccepted    []string `json:"otherEnglishTestsAccepted" bson:"otherEnglishTestsAccepted"`

	GRERequired  bool     `json:"greRequired" bson:"greRequired"`
	GREScore     *float64 `json:"greScore,omitempty" bson:"greScore,omitempty"`
	GMATRequired bool     `json:"gmatRequired" bson:"gmatRequired"`
	GMATScore    *float64 `json:"gmatScore,omitempty" bson:"gmatScore,omitempty"`
	SATRequired  bool     `json:"satRequired" bson:"satRequired"`
	SATScore     *float64 `json:"satScore,omitempty" bson:"satScore,omitempty"`
	ACTRequired  bool     `json:"actRequired" bson:"actRequired"`
	ACTScore     *float64 `json:"actScore,omitempty" bson:"actScore,omitempty"`

	WaiverOptions  []string `json:"waiverOptions" bson:"waiverOptions"`
	PartnerCourse  bool     `json:"partnerCourse" bson:"partnerCourse"`
	FTRanking2024  *int     `json:"ftRanking2024,omitempty" bson:"ftRanking2024,omitempty"`
	AcceptanceRate *float64 `json:"acceptanceRate,omitempty" bson:"acceptanceRate,omitempty"`

	DomesticApplicationDeadline      *time.Time `json:"domesticApplicationDeadline,omitempty" bson:"domesticApplicationDeadline,omitempty"`
	InternationalApplicationDeadline *time.Time `json:"internationalApplicationDeadline,omitempty" bson:"internationalApplicationDeadline,omitempty"`

	CourseURL string    `json:"courseUrl" bson:"courseUrl"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
