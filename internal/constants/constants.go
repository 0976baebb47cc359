package constants

// Order status constants
const (
	OrderStatusPending        = "Pending"
	OrderStatusConfirmed      = "Confirmed"
	OrderStatusBaking         = "Baking"
	OrderStatusReadyForPickup = "Ready for Pickup"
	OrderStatusPickedUp       = "Picked Up"
	OrderStatusCanceled       = "Canceled"
)

// Cancel reason constants, appended to the status shown to the customer
const (
	CancelReasonFullyLoaded            = ": Sorry, Fully Loaded with Orders"
	CancelReasonIngredientsUnavailable = ": Sorry, Ingredients Unavailable"
)

// Payment status constants
const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
)

// Payment method constants
const (
	PaymentMethodXendit = "xendit"
	PaymentMethodCash   = "cash"
)

// Auth provider constants
const (
	AuthTypeLocal  = "local"
	AuthTypeGoogle = "google"
)

// User role constants
const (
	UserRoleCustomer = "customer"
	UserRoleStaff    = "staff"
)

// Cart line type constants
const (
	ItemTypeRegular = "regular"
	ItemTypeCustom  = "custom"
)

// Custom cake option type constants
const (
	CustomizationTypeLayer = "layer"
	CustomizationTypeShape = "shape"
)

// Loyalty status constants
const (
	LoyaltyStatusActive   = "active"
	LoyaltyStatusInactive = "not active"
)

// Order ID counter constants
const (
	CounterOrderID      = "orderId"
	OrderIDPaddingWidth = 3
)

// Captcha provider constants
const (
	CaptchaProviderNone      = "none"
	CaptchaProviderImage     = "image"
	CaptchaProviderRecaptcha = "recaptcha"
)

// Captcha scene constants
const (
	CaptchaSceneLogin = "login"
)

// Queue constants
const (
	QueueDefault       = "default"
	TaskLoyaltyRecount = "loyalty:recount"
)

// Cache default constants
const (
	RedisPrefixDefault = "bh"
)

// Site currency default
const (
	SiteCurrencyDefault = "PHP"
)
