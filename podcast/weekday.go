//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package podcast

// Weekday is a day aggregators may skip polling on.
// ENUM(Monday,Tuesday,Wednesday,Thursday,Friday,Saturday,Sunday)
type Weekday string

func (x Weekday) order() int {
	for i, name := range _WeekdayNames {
		if name == string(x) {
			return i
		}
	}
	return len(_WeekdayNames)
}
