package schedule

// Template offsets are negative months/days before the wedding date;
// zero offsets are day-of tasks.
type template struct {
	itemID       string
	title        string
	description  string
	category     string
	monthsBefore int
	daysBefore   int
	weddingDay   bool
	options      []Option
}

var templates = []template{
	{
		itemID:       "set-budget",
		title:        "Set Your Budget",
		description:  "Agree on a total budget and split it across categories before booking anything.",
		category:     "Planning",
		monthsBefore: -12,
	},
	{
		itemID:       "draft-guest-list",
		title:        "Draft the Guest List",
		description:  "A rough headcount drives venue size, catering and budget.",
		category:     "Planning",
		monthsBefore: -11,
		options: []Option{
			{OptionID: "estimated-count", Label: "Estimated guest count", IsTextInput: true},
		},
	},
	{
		itemID:       "book-venue",
		title:        "Book Venue",
		description:  "Tour venues and put down a deposit on your favorite.",
		category:     "Vendors",
		monthsBefore: -10,
		options: []Option{
			{OptionID: "garden-estate", Label: "The Garden Estate", Description: "Outdoor ceremony under the oaks, ballroom reception.", Price: "$$$", Location: "Hillsborough", Specialties: []string{"outdoor", "ballroom"}, Rating: 4.8},
			{OptionID: "riverside-hall", Label: "Riverside Hall", Description: "Historic hall on the waterfront.", Price: "$$", Location: "Downtown", Specialties: []string{"historic", "waterfront"}, Rating: 4.6},
			{OptionID: "barn-at-willow", Label: "The Barn at Willow Creek", Description: "Rustic barn with string lights and open fields.", Price: "$$", Location: "Willow Creek", Specialties: []string{"rustic", "barn"}, Rating: 4.7},
		},
	},
	{
		itemID:       "book-photographer",
		title:        "Book Photographer",
		description:  "Good photographers book out a year ahead.",
		category:     "Vendors",
		monthsBefore: -9,
		options: []Option{
			{OptionID: "june-light", Label: "June Light Photography", Description: "Documentary style, film and digital.", Price: "$$$", Specialties: []string{"documentary", "film"}, Rating: 4.9},
			{OptionID: "golden-hour", Label: "Golden Hour Studio", Description: "Bright, classic portraiture.", Price: "$$", Specialties: []string{"portrait"}, Rating: 4.5},
		},
	},
	{
		itemID:       "book-caterer",
		title:        "Book Caterer",
		description:  "Schedule tastings and lock in a per-plate price.",
		category:     "Vendors",
		monthsBefore: -8,
		options: []Option{
			{OptionID: "harvest-table", Label: "Harvest Table Catering", Description: "Seasonal family-style menus.", Price: "$$$", Specialties: []string{"family-style", "seasonal"}, Rating: 4.8},
			{OptionID: "smoke-and-salt", Label: "Smoke & Salt", Description: "Barbecue and wood-fired pizza.", Price: "$$", Specialties: []string{"bbq", "casual"}, Rating: 4.6},
		},
	},
	{
		itemID:       "book-band-or-dj",
		title:        "Book Band or DJ",
		description:  "Decide live band versus DJ and reserve the date.",
		category:     "Vendors",
		monthsBefore: -7,
		options: []Option{
			{OptionID: "brass-hearts", Label: "The Brass Hearts", Description: "Eight-piece soul and motown band.", Price: "$$$", Specialties: []string{"live band", "soul"}, Rating: 4.9},
			{OptionID: "dj-marlowe", Label: "DJ Marlowe", Description: "Open-format DJ with full lighting rig.", Price: "$$", Specialties: []string{"dj"}, Rating: 4.7},
		},
	},
	{
		itemID:       "order-attire",
		title:        "Order Wedding Attire",
		description:  "Order dresses and suits; alterations take months.",
		category:     "Attire",
		monthsBefore: -6,
	},
	{
		itemID:       "book-florist",
		title:        "Book Florist",
		description:  "Share your palette and venue photos with a florist.",
		category:     "Vendors",
		monthsBefore: -5,
		options: []Option{
			{OptionID: "wildstem", Label: "Wildstem Floral", Description: "Loose, garden-style arrangements.", Price: "$$", Specialties: []string{"garden-style"}, Rating: 4.8},
			{OptionID: "petal-and-vine", Label: "Petal & Vine", Description: "Classic roses and structured bouquets.", Price: "$$", Specialties: []string{"classic"}, Rating: 4.5},
		},
	},
	{
		itemID:       "send-invitations",
		title:        "Send Invitations",
		description:  "Mail invitations and open RSVPs.",
		category:     "Stationery",
		monthsBefore: -3,
	},
	{
		itemID:       "write-vows",
		title:        "Write Your Vows",
		description:  "Draft and rehearse your vows.",
		category:     "Ceremony",
		monthsBefore: -1,
		options: []Option{
			{OptionID: "partner-one-vows", Label: "Partner one vows", IsTextInput: true},
			{OptionID: "partner-two-vows", Label: "Partner two vows", IsTextInput: true},
		},
	},
	{
		itemID:       "final-headcount",
		title:        "Confirm Final Headcount",
		description:  "Close RSVPs and give the caterer a final number.",
		category:     "Planning",
		daysBefore:   -14,
	},
	{
		itemID:       "seating-chart",
		title:        "Finish the Seating Chart",
		description:  "Assign every confirmed guest a table.",
		category:     "Planning",
		daysBefore:   -7,
	},
	{
		itemID:       "rehearsal-dinner",
		title:        "Rehearsal & Dinner",
		description:  "Walk through the ceremony with the wedding party.",
		category:     "Ceremony",
		daysBefore:   -1,
	},
	{
		itemID:      "ceremony",
		title:       "The Ceremony",
		description: "Say your vows.",
		category:    "Wedding Day",
		weddingDay:  true,
	},
	{
		itemID:      "reception",
		title:       "The Reception",
		description: "Dinner, toasts and dancing.",
		category:    "Wedding Day",
		weddingDay:  true,
	},
}
