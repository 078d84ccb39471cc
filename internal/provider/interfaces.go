package provider

import (
	"context"

	"workorder.io/engine/internal/domain"
)

// ListOptions filters a ListVMs call. Mirrors the subset of
// k8smetav1.ListOptions the KubeVirt provider forwards (ADR-0004:
// provider package never leaks k8s types to its callers).
type ListOptions struct {
	LabelSelector string
	Limit         int
	Continue      string
}

// InfrastructureProvider is the narrow interface VMService depends on
// (ADR-0024), composed from the VM lifecycle operations every backing
// provider (KubeVirtProviderImpl, MockProvider) implements.
type InfrastructureProvider interface {
	Name() string
	Type() string

	GetVM(ctx context.Context, cluster, namespace, name string) (*domain.VM, error)
	ListVMs(ctx context.Context, cluster, namespace string, opts ListOptions) (*domain.VMList, error)
	CreateVM(ctx context.Context, cluster, namespace string, spec *domain.VMSpec) (*domain.VM, error)
	UpdateVM(ctx context.Context, cluster, namespace, name string, spec *domain.VMSpec) (*domain.VM, error)
	DeleteVM(ctx context.Context, cluster, namespace, name string) error

	StartVM(ctx context.Context, cluster, namespace, name string) error
	StopVM(ctx context.Context, cluster, namespace, name string) error
	RestartVM(ctx context.Context, cluster, namespace, name string) error
	PauseVM(ctx context.Context, cluster, namespace, name string) error
	UnpauseVM(ctx context.Context, cluster, namespace, name string) error

	ValidateSpec(ctx context.Context, cluster, namespace string, spec *domain.VMSpec) (*domain.ValidationResult, error)
}
