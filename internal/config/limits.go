package config

const (
	// MaxProjectNameLength matches the VARCHAR(150) name column
	MaxProjectNameLength = 150

	// MaxColorLength bounds the presentation color tag on every entity
	MaxColorLength = 30

	// MaxStakeholderNameLength matches the VARCHAR(150) full_name column
	MaxStakeholderNameLength = 150

	// MaxStakeholderRoleLength and MaxStakeholderAreaLength match VARCHAR(100) columns
	MaxStakeholderRoleLength = 100
	MaxStakeholderAreaLength = 100

	// MaxStakeholderContactLength matches the VARCHAR(150) contact column
	MaxStakeholderContactLength = 150

	// MaxProcessNameLength applies to processes and subprocesses
	MaxProcessNameLength = 150

	// DateLayout is the calendar date format used on the wire and in storage
	DateLayout = "2006-01-02"
)
