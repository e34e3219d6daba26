package ec2

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/olusolaa/teardown-verifier/internal/core/domain"
)

func mapVPC(vpc ec2types.Vpc) domain.Record {
	return domain.NewRecord(aws.ToString(vpc.VpcId),
		domain.Attribute{Label: domain.LabelState, Value: string(vpc.State)})
}

func mapSubnet(subnet ec2types.Subnet) domain.Record {
	return domain.NewRecord(aws.ToString(subnet.SubnetId),
		domain.Attribute{Label: domain.LabelAvailabilityZone, Value: aws.ToString(subnet.AvailabilityZone)})
}

func mapNATGateway(nat ec2types.NatGateway) domain.Record {
	return domain.NewRecord(aws.ToString(nat.NatGatewayId),
		domain.Attribute{Label: domain.LabelState, Value: string(nat.State)})
}

func mapSecurityGroup(sg ec2types.SecurityGroup) domain.Record {
	return domain.NewRecord(aws.ToString(sg.GroupId),
		domain.Attribute{Label: domain.LabelDescription, Value: aws.ToString(sg.Description)})
}

func mapAddress(addr ec2types.Address) domain.Record {
	associated := aws.ToString(addr.InstanceId)
	if associated == "" {
		associated = domain.ValueNotAssociated
	}
	return domain.NewRecord(aws.ToString(addr.AllocationId),
		domain.Attribute{Label: domain.LabelAssociatedWith, Value: associated})
}

// mapRouteTable yields one record per association. A table without any
// association still produces a single "Not associated" record so that it is
// not invisible to the comparison.
func mapRouteTable(rt ec2types.RouteTable) []domain.Record {
	id := aws.ToString(rt.RouteTableId)
	if len(rt.Associations) == 0 {
		return []domain.Record{domain.NewRecord(id,
			domain.Attribute{Label: domain.LabelAssociatedSubnet, Value: domain.ValueNotAssociated})}
	}
	records := make([]domain.Record, 0, len(rt.Associations))
	for _, assoc := range rt.Associations {
		subnet := aws.ToString(assoc.SubnetId)
		if subnet == "" {
			subnet = domain.ValueNotAssociated
		}
		records = append(records, domain.NewRecord(id,
			domain.Attribute{Label: domain.LabelAssociatedSubnet, Value: subnet}))
	}
	return records
}

func mapInstance(instance ec2types.Instance) domain.Record {
	var state string
	if instance.State != nil {
		state = string(instance.State.Name)
	}
	return domain.NewRecord(aws.ToString(instance.InstanceId),
		domain.Attribute{Label: domain.LabelState, Value: state})
}

func mapInternetGateway(igw ec2types.InternetGateway) domain.Record {
	return domain.NewRecord(aws.ToString(igw.InternetGatewayId))
}
