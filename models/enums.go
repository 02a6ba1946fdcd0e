package models

type UserRole string

const (
	UserRoleAdmin    UserRole = "A"
	UserRoleManager  UserRole = "M"
	UserRoleStandard UserRole = "S"
)

type PropertyStatus string

const (
	PropertyStatusLeased  PropertyStatus = "Leased"
	PropertyStatusVacant  PropertyStatus = "Vacant"
	PropertyStatusArrears PropertyStatus = "Arrears"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyStatusLeased, PropertyStatusVacant, PropertyStatusArrears:
		return true
	}
	return false
}

type PropertyType string

const (
	PropertyTypeResidential PropertyType = "Residential"
	PropertyTypeCommercial  PropertyType = "Commercial"
)

func (t PropertyType) Valid() bool {
	return t == PropertyTypeResidential || t == PropertyTypeCommercial
}

type RentFrequency string

const (
	RentFrequencyWeekly   RentFrequency = "Weekly"
	RentFrequencyMonthly  RentFrequency = "Monthly"
	RentFrequencyAnnually RentFrequency = "Annually"
)

func (f RentFrequency) Valid() bool {
	switch f {
	case RentFrequencyWeekly, RentFrequencyMonthly, RentFrequencyAnnually:
		return true
	}
	return false
}

type FollowUpStatus string

const (
	FollowUpStatusPending   FollowUpStatus = "Pending"
	FollowUpStatusCompleted FollowUpStatus = "Completed"
)

type FollowUpCategory string

const (
	FollowUpCategoryCleaning FollowUpCategory = "Cleaning"
	FollowUpCategoryDamage   FollowUpCategory = "Damage"
	FollowUpCategoryGarden   FollowUpCategory = "Garden"
	FollowUpCategoryOther    FollowUpCategory = "Other"
)

func (c FollowUpCategory) Valid() bool {
	switch c {
	case FollowUpCategoryCleaning, FollowUpCategoryDamage, FollowUpCategoryGarden, FollowUpCategoryOther:
		return true
	}
	return false
}

type MaintenancePriority string

const (
	MaintenancePriorityLow    MaintenancePriority = "Low"
	MaintenancePriorityMedium MaintenancePriority = "Medium"
	MaintenancePriorityHigh   MaintenancePriority = "High"
	MaintenancePriorityUrgent MaintenancePriority = "Urgent"
)

func (p MaintenancePriority) Valid() bool {
	switch p {
	case MaintenancePriorityLow, MaintenancePriorityMedium, MaintenancePriorityHigh, MaintenancePriorityUrgent:
		return true
	}
	return false
}

type MaintenanceStatus string

const (
	MaintenanceStatusNew        MaintenanceStatus = "New"
	MaintenanceStatusScheduled  MaintenanceStatus = "Scheduled"
	MaintenanceStatusInProgress MaintenanceStatus = "InProgress"
	MaintenanceStatusCompleted  MaintenanceStatus = "Completed"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceStatusNew, MaintenanceStatusScheduled, MaintenanceStatusInProgress, MaintenanceStatusCompleted:
		return true
	}
	return false
}

type TripCategory string

const (
	TripCategoryBusiness TripCategory = "Business"
	TripCategoryPrivate  TripCategory = "Private"
)

func (c TripCategory) Valid() bool {
	return c == TripCategoryBusiness || c == TripCategoryPrivate
}

// AutoLogDriver marks ledger rows created by the schedule import rather than
// a person typing them in.
const AutoLogDriver = "AI Auto-Log"
