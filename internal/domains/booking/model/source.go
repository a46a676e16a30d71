package model

import (
	"fmt"
	"hotelops/config"
	"slices"
)

// Source is the channel a booking came in through.
type Source string

const (
	SourceWebsite   Source = "website"
	SourceFrontDesk Source = "front_desk"
	SourcePhone     Source = "phone"
	SourceEmail     Source = "email"
	SourceWalkIn    Source = "walk_in"
	SourceOTA       Source = "ota"
	SourceCorporate Source = "corporate"
)

var sources = []Source{
	SourceWebsite,
	SourceFrontDesk,
	SourcePhone,
	SourceEmail,
	SourceWalkIn,
	SourceOTA,
	SourceCorporate,
}

func (s Source) Validate(_ *config.Config) error {
	if !slices.Contains(sources, s) {
		return fmt.Errorf("unknown booking source %q", s)
	}

	return nil
}
