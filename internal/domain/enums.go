package domain

type ReportStatus string

const (
	StatusDraft        ReportStatus = "draft"
	StatusUnlocked     ReportStatus = "unlocked"
	StatusAdminCreated ReportStatus = "admin_created"
	StatusFinalized    ReportStatus = "finalized"
)

// Editable reports whether a report in this status accepts draft saves.
func (s ReportStatus) Editable() bool {
	switch s {
	case StatusDraft, StatusUnlocked, StatusAdminCreated:
		return true
	}
	return false
}

type StaffRole string

const (
	RoleStaff      StaffRole = "staff"
	RoleSupervisor StaffRole = "supervisor"
	RoleAdmin      StaffRole = "admin"
)

type SectionKey string

const (
	SectionStudents         SectionKey = "students"
	SectionProjects         SectionKey = "projects"
	SectionCollaborations   SectionKey = "collaborations"
	SectionResponsibilities SectionKey = "responsibilities"
	SectionStaffing         SectionKey = "staffing"
	SectionKPIs             SectionKey = "kpis"
	SectionEvents           SectionKey = "events"
)

// SectionOrder is the canonical display order of report sections.
var SectionOrder = []SectionKey{
	SectionStudents,
	SectionProjects,
	SectionCollaborations,
	SectionResponsibilities,
	SectionStaffing,
	SectionKPIs,
	SectionEvents,
}

// SectionLabels maps section keys to their display names.
var SectionLabels = map[SectionKey]string{
	SectionStudents:         "Students/Stakeholders",
	SectionProjects:         "Projects",
	SectionCollaborations:   "Collaborations",
	SectionResponsibilities: "General Job Responsibilities",
	SectionStaffing:         "Staffing/Personnel",
	SectionKPIs:             "KPIs",
	SectionEvents:           "Campus Events/Committees",
}

type EntryKind string

const (
	KindSuccess   EntryKind = "success"
	KindChallenge EntryKind = "challenge"
)

type AscendCategory string

const (
	AscendAccountability AscendCategory = "Accountability"
	AscendService        AscendCategory = "Service"
	AscendCommunity      AscendCategory = "Community"
	AscendExcellence     AscendCategory = "Excellence"
	AscendNurture        AscendCategory = "Nurture"
	AscendDevelopment    AscendCategory = "Development"
	AscendNA             AscendCategory = "N/A"
)

type NorthCategory string

const (
	NorthNurturing      NorthCategory = "Nurturing"
	NorthOperational    NorthCategory = "Operational"
	NorthResource       NorthCategory = "Resource"
	NorthTransformative NorthCategory = "Transformative"
	NorthHolistic       NorthCategory = "Holistic"
	NorthNA             NorthCategory = "N/A"
)

// ValidAscendCategories is the closed set of accepted ASCEND values.
var ValidAscendCategories = map[AscendCategory]bool{
	AscendAccountability: true, AscendService: true, AscendCommunity: true,
	AscendExcellence: true, AscendNurture: true, AscendDevelopment: true,
	AscendNA: true,
}

// ValidNorthCategories is the closed set of accepted NORTH values.
var ValidNorthCategories = map[NorthCategory]bool{
	NorthNurturing: true, NorthOperational: true, NorthResource: true,
	NorthTransformative: true, NorthHolistic: true, NorthNA: true,
}

// Default classifications applied when AI categorization is unavailable
// or returns incomplete coverage.
const (
	FallbackAscend = AscendDevelopment
	FallbackNorth  = NorthNurturing
)
