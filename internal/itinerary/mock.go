package itinerary

var mockDays = []ScheduleDay{
	{
		Day: 1,
		Activities: []Activity{
			{Time: "09:00", Name: "Arrive at Airport", Location: "Bangkok Airport", Locked: true},
			{Time: "11:00", Name: "Check-in at Hotel", Location: "Downtown Bangkok"},
			{Time: "14:00", Name: "Visit Grand Palace", Location: "Old City", Locked: true},
			{Time: "18:00", Name: "Street Food Tour", Location: "Khao San Road"},
		},
	},
	{
		Day: 2,
		Activities: []Activity{
			{Time: "08:00", Name: "Floating Market", Location: "Damnoen Saduak"},
			{Time: "13:00", Name: "Lunch at Local Restaurant", Location: "Riverside"},
			{Time: "15:00", Name: "Temple Hopping", Location: "Wat Pho & Wat Arun", Locked: true},
			{Time: "19:00", Name: "Rooftop Bar Experience", Location: "Sky Bar"},
		},
	},
}

// MockSchedule returns a fresh copy of the example schedule shown when a plan
// yields no days.
func MockSchedule() []ScheduleDay {
	return CloneSchedule(mockDays)
}
