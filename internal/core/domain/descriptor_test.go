package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olusolaa/teardown-verifier/internal/core/domain"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		category domain.Category
		record   domain.Record
		expected domain.Descriptor
	}{
		{
			name:     "vpc",
			category: domain.CategoryVPC,
			record:   domain.NewRecord("vpc-1", domain.Attribute{Label: domain.LabelState, Value: "available"}),
			expected: "VPC ID: vpc-1 - State: available",
		},
		{
			name:     "elastic ip",
			category: domain.CategoryElasticIP,
			record:   domain.NewRecord("eipalloc-1", domain.Attribute{Label: domain.LabelAssociatedWith, Value: domain.ValueNotAssociated}),
			expected: "EIP Allocation ID: eipalloc-1 - Associated with: Not associated",
		},
		{
			name:     "internet gateway without attributes",
			category: domain.CategoryInternetGateway,
			record:   domain.NewRecord("igw-1"),
			expected: "IGW ID: igw-1",
		},
		{
			name:     "cluster",
			category: domain.CategoryEKSCluster,
			record:   domain.NewRecord("weather-app-cluster", domain.Attribute{Label: domain.LabelStatus, Value: "ACTIVE"}),
			expected: "Cluster Name: weather-app-cluster - Status: ACTIVE",
		},
		{
			name:     "route table",
			category: domain.CategoryRouteTable,
			record:   domain.NewRecord("rtb-1", domain.Attribute{Label: domain.LabelAssociatedSubnet, Value: "subnet-1"}),
			expected: "Route Table ID: rtb-1 - Associated with Subnet: subnet-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.Describe(tt.category, tt.record))
		})
	}
}

func TestDescriptor_Identity(t *testing.T) {
	assert.Equal(t, "Instance ID: i-1", domain.Descriptor("Instance ID: i-1 - State: running").Identity())
	assert.Equal(t, "IGW ID: igw-1", domain.Descriptor("IGW ID: igw-1").Identity())
	assert.Equal(t, "SG ID: sg-1",
		domain.Descriptor("SG ID: sg-1 - Description: web - allow http").Identity(),
		"separators inside attribute values must not leak into the identity")
}

func TestInventory_Dedup(t *testing.T) {
	inv := domain.NewInventory("b", "a", "b", "c", "a")

	assert.Equal(t, 3, inv.Len())
	assert.Equal(t, []domain.Descriptor{"a", "b", "c"}, inv.Descriptors())
	assert.Equal(t, []string{"a", "b", "c"}, inv.Strings())
	assert.True(t, inv.Contains("a"))
	assert.False(t, inv.Contains("z"))
}

func TestInventory_ZeroValue(t *testing.T) {
	var inv domain.Inventory

	assert.Equal(t, 0, inv.Len())
	assert.Empty(t, inv.Descriptors())
	assert.False(t, inv.Contains("a"))
	assert.True(t, inv.Equal(domain.NewInventory()))
}

func TestInventory_Equal(t *testing.T) {
	assert.True(t, domain.NewInventory("a", "b").Equal(domain.NewInventory("b", "a", "a")))
	assert.False(t, domain.NewInventory("a", "b").Equal(domain.NewInventory("a", "c")))
	assert.False(t, domain.NewInventory("a").Equal(domain.NewInventory("a", "b")))
}

func TestDiffReport_Clean(t *testing.T) {
	assert.True(t, domain.DiffReport{}.Clean())
	assert.True(t, domain.DiffReport{Modified: []domain.Modification{{Identity: "x"}}}.Clean())
	assert.False(t, domain.DiffReport{Removed: []domain.Descriptor{"a"}}.Clean())
	assert.False(t, domain.DiffReport{Added: []domain.Descriptor{"a"}}.Clean())
}

func TestCaptureResult_FailedCategoryKeys(t *testing.T) {
	res := domain.CaptureResult{Failures: []domain.CategoryFailure{
		{Category: domain.CategoryVPC},
		{Category: domain.CategoryEKSCluster},
	}}

	assert.True(t, res.Partial())
	assert.Equal(t, []string{"vpc", "eks_cluster"}, res.FailedCategoryKeys())
	assert.False(t, domain.CaptureResult{}.Partial())
}
