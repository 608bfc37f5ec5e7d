package curriculum

// Duration is the planned length of the learning experience.
type Duration string

const (
	DurationNone    Duration = ""
	DurationSingle  Duration = "single"
	DurationDouble  Duration = "double"
	DurationHalfDay Duration = "halfday"
	DurationFullDay Duration = "fullday"
	DurationWeek    Duration = "week"
	DurationTerm    Duration = "term"
)

// Durations returns the selectable values in menu order.
func Durations() []Duration {
	return []Duration{DurationSingle, DurationDouble, DurationHalfDay, DurationFullDay, DurationWeek, DurationTerm}
}

var durationLabels = map[Duration]string{
	DurationSingle:  "Single lesson (1 hour)",
	DurationDouble:  "Double lesson (2 hours)",
	DurationHalfDay: "Half day",
	DurationFullDay: "Full day",
	DurationWeek:    "Week-long project",
	DurationTerm:    "Half-term / Term project",
}

// Label returns the display label. Unknown or empty values read as
// "Not specified" rather than failing.
func (d Duration) Label() string {
	if l, ok := durationLabels[d]; ok {
		return l
	}
	return "Not specified"
}
