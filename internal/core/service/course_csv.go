package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/coursecompass/course-discovery/internal/core/domain"
)

// courseRow is one CSV record addressed by header name.
type courseRow map[string]string

// ParseCoursesCSV reads a tabular course file and maps every data row into a
// Course record. Rows are mapped permissively: numeric fields default to zero
// on parse failure, comma-separated cells split into lists with blank entries
// removed, and Yes/No cells normalize case-insensitively. Structural CSV
// errors (bad quoting) fail the whole parse.
func ParseCoursesCSV(r io.Reader) ([]domain.Course, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var courses []domain.Course
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		courses = append(courses, mapCourseRow(newCourseRow(header, record)))
	}
	return courses, nil
}

func newCourseRow(header, record []string) courseRow {
	row := make(courseRow, len(header))
	for i, name := range header {
		if i < len(record) {
			row[strings.TrimSpace(name)] = record[i]
		}
	}
	return row
}

// mapCourseRow maps a row into a Course. Each field tolerates two header
// spellings: the human-readable export header and the camelCase one, for
// compatibility with files uploaded against earlier catalog versions.
func mapCourseRow(row courseRow) domain.Course {
	return domain.Course{
		UniqueID:       row.text("Unique ID", "uniqueId"),
		CourseName:     row.text("Course Name", "courseName"),
		CourseCode:     row.text("Course Code", "courseCode"),
		UniversityCode: row.text("University Code", "universityCode"),
		UniversityName: row.text("University Name", "universityName"),
		Department:     row.text("Department/School", "department"),
		Discipline:     row.text("Discipline/Major", "discipline"),
		Specialization: row.text("Specialization", "specialization"),
		CourseLevel:    row.text("Course Level", "courseLevel"),
		Overview:       row.text("Overview/Description", "overview"),
		Summary:        row.text("Summary", "summary"),

		Prerequisites:       row.list("Prerequisites (comma-separated)", "prerequisites"),
		LearningOutcomes:    row.list("Learning Outcomes (comma-separated)", "learningOutcomes"),
		TeachingMethodology: row.text("Teaching Methodology", "teachingMethodology"),
		AssessmentMethods:   row.list("Assessment Methods (comma-separated)", "assessmentMethods"),

		Credits:               row.intOrZero("Credits", "credits"),
		DurationMonths:        row.intOrZero("Duration (Months)", "duration"),
		LanguageOfInstruction: row.text("Language of Instruction", "languageOfInstruction"),
		SyllabusURL:           row.text("Syllabus URL", "syllabusUrl"),
		Keywords:              row.list("Keywords (comma-separated)", "keywords"),

		ProfessorName:  row.text("Professor Name", "professorName"),
		ProfessorEmail: row.text("Professor Email", "professorEmail"),
		OfficeLocation: row.text("Office Location", "officeLocation"),

		OpenForIntake:      row.text("Open for Intake (Year/Semester)", "openForIntake"),
		AdmissionOpenYears: row.list("Admission Open Years", "admissionOpenYears"),
		AttendanceType:     row.text("Attendance Type", "attendanceType"),

		FirstYearTuitionFee:    row.floatOrZero("1st Year Tuition Fee", "firstYearTuitionFee"),
		TotalTuitionFee:        row.floatOrZero("Total Tuition Fee", "totalTuitionFee"),
		TuitionFeeCurrency:     row.text("Tuition Fee Currency", "tuitionFeeCurrency"),
		ApplicationFeeAmount:   row.floatOrZero("Application Fee Amount", "applicationFeeAmount"),
		ApplicationFeeCurrency: row.text("Application Fee Currency", "applicationFeeCurrency"),
		ApplicationFeeWaived:   row.yesNo("Application Fee Waived (Yes/No)", "applicationFeeWaived"),

		RequiredApplicationMaterials:   row.list("Required Application Materials", "requiredApplicationMaterials"),
		TwelfthGradeRequirement:        row.text("12th Grade Requirement", "twelfthGradeRequirement"),
		UndergraduateDegreeRequirement: row.text("Undergraduate Degree Requirement", "undergraduateDegreeRequirement"),

		MinimumIELTSScore:            row.optionalFloat("Minimum IELTS Score", "minimumIELTSScore"),
		MinimumTOEFLScore:            row.optionalFloat("Minimum TOEFL Score", "minimumTOEFLScore"),
		MinimumPTEScore:              row.optionalFloat("Minimum PTE Score", "minimumPTEScore"),
		MinimumDuolingoScore:         row.optionalFloat("Minimum Duolingo Score", "minimumDuolingoScore"),
		MinimumCambridgeEnglishScore: row.optionalFloat("Minimum Cambridge English Score", "minimumCambridgeEnglishScore"),
		OtherEnglishTestsAccepted:    row.list("Other English Tests Accepted", "otherEnglishTestsAccepted"),

		GRERequired:  row.yesNo("GRE Required (Yes/No)", "greRequired"),
		GREScore:     row.optionalFloat("GRE Score", "greScore"),
		GMATRequired: row.yesNo("GMAT Required (Yes/No)", "gmatRequired"),
		GMATScore:    row.optionalFloat("GMAT Score", "gmatScore"),
		SATRequired:  row.yesNo("SAT Required (Yes/No)", "satRequired"),
		SATScore:     row.optionalFloat("SAT Score", "satScore"),
		ACTRequired:  row.yesNo("ACT Required (Yes/No)", "actRequired"),
		ACTScore:     row.optionalFloat("ACT Score", "actScore"),

		WaiverOptions:  row.list("Waiver Options", "waiverOptions"),
		PartnerCourse:  row.yesNo("Partner Course (Yes/No)", "partnerCourse"),
		FTRanking2024:  row.optionalInt("FT Ranking 2024", "ftRanking2024"),
		AcceptanceRate: row.optionalFloat("Acceptance Rate", "acceptanceRate"),

		DomesticApplicationDeadline:      row.optionalDate("Domestic Application Deadline", "domesticApplicationDeadline"),
		InternationalApplicationDeadline: row.optionalDate("International Application Deadline", "internationalApplicationDeadline"),

		CourseURL: row.text("Course URL", "courseUrl"),
	}
}

// text returns the first non-empty value among the given header spellings.
func (r courseRow) text(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(r[k]); v != "" {
			return v
		}
	}
	return ""
}

// list splits a comma-separated cell, trimming entries and dropping blanks.
func (r courseRow) list(keys ...string) []string {
	raw := r.text(keys...)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (r courseRow) intOrZero(keys ...string) int {
	n, err := strconv.Atoi(r.text(keys...))
	if err != nil {
		return 0
	}
	return n
}

func (r courseRow) floatOrZero(keys ...string) float64 {
	f, err := strconv.ParseFloat(r.text(keys...), 64)
	if err != nil {
		return 0
	}
	return f
}

func (r courseRow) optionalInt(keys ...string) *int {
	raw := r.text(keys...)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func (r courseRow) optionalFloat(keys ...string) *float64 {
	raw := r.text(keys...)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

func (r courseRow) yesNo(keys ...string) bool {
	return strings.EqualFold(r.text(keys...), "yes")
}

var deadlineLayouts = []string{"2006-01-02", time.RFC3339, "01/02/2006", "2 January 2006"}

func (r courseRow) optionalDate(keys ...string) *time.Time {
	raw := r.text(keys...)
	if raw == "" {
		return nil
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
