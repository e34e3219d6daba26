package domain

// Category describes one enumerable resource category. Name and IDLabel are
// rendered verbatim into descriptors, so changing them changes every
// descriptor of that category and breaks comparisons against old snapshots.
type Category struct {
	Key     string
	Name    string
	IDLabel string
}

func (c Category) String() string {
	return c.Key
}

var (
	CategoryVPC             = Category{Key: "vpc", Name: "VPC", IDLabel: "ID"}
	CategorySubnet          = Category{Key: "subnet", Name: "Subnet", IDLabel: "ID"}
	CategoryNATGateway      = Category{Key: "nat_gateway", Name: "NAT Gateway", IDLabel: "ID"}
	CategorySecurityGroup   = Category{Key: "security_group", Name: "SG", IDLabel: "ID"}
	CategoryElasticIP       = Category{Key: "elastic_ip", Name: "EIP", IDLabel: "Allocation ID"}
	CategoryRouteTable      = Category{Key: "route_table", Name: "Route Table", IDLabel: "ID"}
	CategoryInstance        = Category{Key: "instance", Name: "Instance", IDLabel: "ID"}
	CategoryInternetGateway = Category{Key: "internet_gateway", Name: "IGW", IDLabel: "ID"}
	CategoryEKSCluster      = Category{Key: "eks_cluster", Name: "Cluster", IDLabel: "Name"}
	CategoryIAMRole         = Category{Key: "iam_role", Name: "IAM Role", IDLabel: "Name"}
)

// Attribute labels used in descriptors.
const (
	LabelState            = "State"
	LabelStatus           = "Status"
	LabelAvailabilityZone = "Availability Zone"
	LabelDescription      = "Description"
	LabelAssociatedWith   = "Associated with"
	LabelAssociatedSubnet = "Associated with Subnet"
	LabelPath             = "Path"

	ValueNotAssociated = "Not associated"
)

// DefaultCategoryKeys is the set captured when configuration does not say
// otherwise. IAM roles are global and noisy, so they are opt-in.
func DefaultCategoryKeys() []string {
	return []string{
		CategoryVPC.Key,
		CategorySubnet.Key,
		CategoryNATGateway.Key,
		CategorySecurityGroup.Key,
		CategoryElasticIP.Key,
		CategoryRouteTable.Key,
		CategoryInstance.Key,
		CategoryInternetGateway.Key,
		CategoryEKSCluster.Key,
	}
}

// KnownCategories lists every category this build can enumerate.
func KnownCategories() []Category {
	return []Category{
		CategoryVPC,
		CategorySubnet,
		CategoryNATGateway,
		CategorySecurityGroup,
		CategoryElasticIP,
		CategoryRouteTable,
		CategoryInstance,
		CategoryInternetGateway,
		CategoryEKSCluster,
		CategoryIAMRole,
	}
}
