package catalog

import (
	"time"
)

// SeedAuthor is an author with the books (and their copies) to insert with it.
type SeedAuthor struct {
	FirstName   string
	FamilyName  string
	DateOfBirth *time.Time
	DateOfDeath *time.Time
	Books       []SeedBook
}

type SeedBook struct {
	Title  string
	Copies []Copy
}

// SeedResult counts the records written by a Seeder.
type SeedResult struct {
	Authors int
	Books   int
	Copies  int
}

// SampleCatalog returns a small catalog covering every copy status.
func SampleCatalog() []SeedAuthor {
	return []SeedAuthor{
		{
			FirstName:   "Patrick",
			FamilyName:  "Rothfuss",
			DateOfBirth: date(1973, time.June, 6),
			Books: []SeedBook{
				{
					Title: "The Name of the Wind (The Kingkiller Chronicle, #1)",
					Copies: []Copy{
						{Imprint: "London Gollancz, 2014.", Status: StatusAvailable},
						{Imprint: "Gollancz, 2011.", Status: StatusLoaned},
					},
				},
				{
					Title: "The Wise Man's Fear (The Kingkiller Chronicle, #2)",
					Copies: []Copy{
						{Imprint: "Gollancz, 2011.", Status: StatusMaintenance},
					},
				},
			},
		},
		{
			FirstName:   "Ben",
			FamilyName:  "Bova",
			DateOfBirth: date(1932, time.November, 8),
			Books: []SeedBook{
				{
					Title: "Apes and Angels",
					Copies: []Copy{
						{Imprint: "New York Tom Doherty Associates, 2016.", Status: StatusAvailable},
						{Imprint: "New York Tom Doherty Associates, 2016.", Status: StatusReserved},
					},
				},
				{
					Title: "Death Wave",
					Copies: []Copy{
						{Imprint: "New York, NY Tom Doherty Associates, LLC, 2015.", Status: StatusAvailable},
					},
				},
			},
		},
		{
			FirstName:   "Isaac",
			FamilyName:  "Asimov",
			DateOfBirth: date(1920, time.January, 2),
			DateOfDeath: date(1992, time.April, 6),
			Books: []SeedBook{
				{
					Title: "Foundation",
					Copies: []Copy{
						{Imprint: "New York Gnome Press, 1951.", Status: StatusUnavailable},
					},
				},
			},
		},
		{
			FirstName:   "Jim",
			FamilyName:  "Jones",
			DateOfBirth: date(1971, time.December, 16),
			Books: []SeedBook{
				{Title: "Test Book 1"},
			},
		},
	}
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
