package registry

// SeedActivities returns the initial dataset the registry is populated with
// at process start. Returned fresh on every call so callers can mutate their
// copy freely.
func SeedActivities() map[string]Activity {
	return map[string]Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Soccer Team": {
			Description:     "Join the varsity soccer team and compete against other schools",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    []string{"liam@mergington.edu", "ava@mergington.edu"},
		},
		"Swimming Club": {
			Description:     "Improve swimming techniques and participate in swim meets",
			Schedule:        "Mondays and Wednesdays, 3:00 PM - 4:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"noah@mergington.edu", "mia@mergington.edu"},
		},
		"Drama Club": {
			Description:     "Perform in theatrical productions and develop acting skills",
			Schedule:        "Wednesdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"ethan@mergington.edu", "isabella@mergington.edu"},
		},
		"Art Studio": {
			Description:     "Explore various art mediums including painting, drawing, and sculpture",
			Schedule:        "Fridays, 2:30 PM - 4:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"lucas@mergington.edu", "charlotte@mergington.edu"},
		},
		"Debate Team": {
			Description:     "Develop critical thinking and public speaking through competitive debates",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 14,
			Participants:    []string{"james@mergington.edu", "amelia@mergington.edu"},
		},
		"Science Olympiad": {
			Description:     "Compete in academic science competitions and conduct experiments",
			Schedule:        "Tuesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"benjamin@mergington.edu", "harper@mergington.edu"},
		},
	}
}
