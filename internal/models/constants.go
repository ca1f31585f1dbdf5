package models

const (
	PaymentMethodCash   = "cash"
	PaymentMethodOnline = "online"

	QualityPremium  = "Premium"
	QualityStandard = "Standard"
	QualityEconomy  = "Economy"

	SegmentVIP     = "VIP"
	SegmentPremium = "Premium"
	SegmentRegular = "Regular"
	SegmentNew     = "New"
	SegmentDormant = "Dormant"

	PaymentPreferenceCash   = "cash"
	PaymentPreferenceOnline = "online"
	PaymentPreferenceMixed  = "mixed"

	// WalkInCustomer is the bucket for orders recorded without a customer
	// name. Known data-quality limitation: all anonymous sales collapse
	// into this single profile.
	WalkInCustomer = "Walk-in Customer"
)
