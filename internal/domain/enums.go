package domain

import (
	"fmt"
	"strings"
)

type SizeBand string

const (
	BandXS SizeBand = "XS"
	BandS  SizeBand = "S"
	BandM  SizeBand = "M"
	BandL  SizeBand = "L"
	BandXL SizeBand = "XL"
)

// SizeBands lists every band from smallest to largest.
var SizeBands = []SizeBand{BandXS, BandS, BandM, BandL, BandXL}

// ParseSizeBand accepts a band name in any case.
func ParseSizeBand(s string) (SizeBand, error) {
	b := SizeBand(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range SizeBands {
		if b == known {
			return b, nil
		}
	}
	return "", fmt.Errorf("unknown size band %q (expected XS, S, M, L or XL)", s)
}

type Role string

const (
	RoleUX      Role = "ux"
	RoleContent Role = "content"
)

// Roles lists the design roles that carry capacity.
var Roles = []Role{RoleUX, RoleContent}

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleUX:
		return RoleUX, nil
	case RoleContent:
		return RoleContent, nil
	}
	return "", fmt.Errorf("unknown role %q (expected ux or content)", s)
}

type ScenarioStatus string

const (
	ScenarioActive   ScenarioStatus = "active"
	ScenarioArchived ScenarioStatus = "archived"
)

type ItemStatus string

const (
	ItemProposed  ItemStatus = "proposed"
	ItemCommitted ItemStatus = "committed"
	ItemDone      ItemStatus = "done"
	ItemCut       ItemStatus = "cut"
)

// ValidItemStatuses is the canonical set of accepted item status strings.
var ValidItemStatuses = map[string]bool{
	"proposed": true, "committed": true, "done": true, "cut": true,
}

type IntakeSource string

const (
	IntakeDesigner IntakeSource = "designer"
	IntakePM       IntakeSource = "pm"
)

// ValidIntakeSources is the canonical set of accepted intake source strings.
var ValidIntakeSources = map[string]bool{
	"designer": true, "pm": true,
}
