package types

import "github.com/m-mizutani/goerr/v2"

// TechnologyType tags an opportunity with the kind of AI it relies on.
type TechnologyType string

const (
	TechMachineLearning     TechnologyType = "Machine Learning"
	TechNaturalLanguage     TechnologyType = "Natural Language Processing"
	TechComputerVision      TechnologyType = "Computer Vision"
	TechGenerativeAI        TechnologyType = "Generative AI"
	TechProcessAutomation   TechnologyType = "Robotic Process Automation"
	TechPredictiveAnalytics TechnologyType = "Predictive Analytics"
	TechConversationalAI    TechnologyType = "Conversational AI"
)

// DefaultTechnologyType is preselected in a fresh draft
const DefaultTechnologyType = TechMachineLearning

var technologyTypes = []TechnologyType{
	TechMachineLearning,
	TechNaturalLanguage,
	TechComputerVision,
	TechGenerativeAI,
	TechProcessAutomation,
	TechPredictiveAnalytics,
	TechConversationalAI,
}

// TechnologyTypes returns the closed set of technology types in display order
func TechnologyTypes() []TechnologyType {
	out := make([]TechnologyType, len(technologyTypes))
	copy(out, technologyTypes)
	return out
}

// Validate checks if the TechnologyType is one of the known values
func (t TechnologyType) Validate() error {
	for _, v := range technologyTypes {
		if v == t {
			return nil
		}
	}
	return goerr.New("unknown technology type", goerr.V("technology_type", string(t)))
}

// String returns the string representation of TechnologyType
func (t TechnologyType) String() string {
	return string(t)
}
