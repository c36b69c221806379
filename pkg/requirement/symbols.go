package requirement

import "github.com/aretw0/mermaidkit/pkg/domain"

// Kind is the type of a requirement.
type Kind int

const (
	Requirement Kind = iota
	Functional
	Interface
	Performance
	Physical
	DesignConstraint
)

var kinds = domain.Symbols[Kind]{
	Requirement:      "requirement",
	Functional:       "functionalRequirement",
	Interface:        "interfaceRequirement",
	Performance:      "performanceRequirement",
	Physical:         "physicalRequirement",
	DesignConstraint: "designConstraint",
}

// Risk of a requirement.
type Risk int

const (
	NoRisk Risk = iota
	LowRisk
	MediumRisk
	HighRisk
)

var risks = domain.Symbols[Risk]{
	NoRisk:     "",
	LowRisk:    "Low",
	MediumRisk: "Medium",
	HighRisk:   "High",
}

// VerifyMethod states how a requirement is verified.
type VerifyMethod int

const (
	Unverified VerifyMethod = iota
	Analysis
	Inspection
	Test
	Demonstration
)

var methods = domain.Symbols[VerifyMethod]{
	Unverified:    "",
	Analysis:      "Analysis",
	Inspection:    "Inspection",
	Test:          "Test",
	Demonstration: "Demonstration",
}

// Relation is the kind of link between two nodes.
type Relation int

const (
	Contains Relation = iota
	Copies
	Derives
	Satisfies
	Verifies
	Refines
	Traces
)

var relations = domain.Symbols[Relation]{
	Contains:  "contains",
	Copies:    "copies",
	Derives:   "derives",
	Satisfies: "satisfies",
	Verifies:  "verifies",
	Refines:   "refines",
	Traces:    "traces",
}

var elementBlock = &domain.Block{Name: "element", Open: "element", Suffix: "{", Close: "}"}
