package domain

// SpeedLimits in km/h for one vehicle class.
type SpeedLimits struct {
	City       int `json:"city"`
	Highway    int `json:"highway"`
	SchoolZone int `json:"school_zone"`
}

type MandatoryItems struct {
	FirstAidKit     bool `json:"first_aid_kit"`
	WarningTriangle bool `json:"warning_triangle"`
	ReflectiveVests bool `json:"reflective_vests"`
	SpareTire       bool `json:"spare_tire"`
}

type OtherRules struct {
	MandatoryItems    MandatoryItems `json:"mandatory_items"`
	SeatbeltMandatory bool           `json:"seatbelt_mandatory"`
	AlcoholLimit      float64        `json:"alcohol_limit"`
	DrivingAgeLimit   int            `json:"driving_age_limit"`
}

type Fees struct {
	Highway   bool    `json:"highway"`
	TollPrice float64 `json:"toll_price"`
}

// StreetRule describes per-country road regulations served by the backend.
type StreetRule struct {
	CountryName string                 `json:"country_name"`
	SpeedLimits map[string]SpeedLimits `json:"speed_limits"`
	OtherRules  OtherRules             `json:"other_rules"`
	Fees        Fees                   `json:"fees"`
}
