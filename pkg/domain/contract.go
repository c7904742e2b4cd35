package domain

import (
	"fmt"
	"strings"
	"time"
)

// ContractSource tells how the contract text was produced
type ContractSource string

const (
	SourceAI       ContractSource = "ai"
	SourceTemplate ContractSource = "template"
)

// GenerateRequest contains the fields of a contract generation request
type GenerateRequest struct {
	ContractType   string `json:"contract_type"`
	ClientName     string `json:"client_name"`
	FreelancerName string `json:"freelancer_name"`
	ProjectScope   string `json:"project_scope"`
	Budget         string `json:"budget"`
	Timeline       string `json:"timeline"`
	UseMemory      bool   `json:"use_memory"`
}

// Validate checks that all required fields are set
func (r GenerateRequest) Validate() error {
	var missing []string
	if strings.TrimSpace(r.ContractType) == "" {
		missing = append(missing, "contract_type")
	}
	if strings.TrimSpace(r.ClientName) == "" {
		missing = append(missing, "client_name")
	}
	if strings.TrimSpace(r.FreelancerName) == "" {
		missing = append(missing, "freelancer_name")
	}
	if strings.TrimSpace(r.ProjectScope) == "" {
		missing = append(missing, "project_scope")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// GenerateResult is returned to the caller of a generation request
type GenerateResult struct {
	Contract       string         `json:"contract"`
	Source         ContractSource `json:"source"`
	MemoryApplied  bool           `json:"memory_applied"`
	DraftID        string         `json:"draft_id,omitempty"`
	FallbackReason string         `json:"fallback_reason,omitempty"`
}

// Draft is a persisted generated contract
type Draft struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	ContractType   string         `json:"contract_type"`
	ClientName     string         `json:"client_name"`
	FreelancerName string         `json:"freelancer_name"`
	ProjectScope   string         `json:"project_scope"`
	Budget         string         `json:"budget"`
	Timeline       string         `json:"timeline"`
	Content        string         `json:"content"`
	Source         ContractSource `json:"source"`
	MemoryApplied  bool           `json:"memory_applied"`
	CreatedAt      time.Time      `json:"created_at"`
}

// ValidationError reports missing or invalid request fields
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}
