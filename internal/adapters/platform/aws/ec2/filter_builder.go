package ec2

import (
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

const awsTagFilterPrefix = "tag:"

// BuildTagFilters turns tag key/value pairs into EC2 "tag:<key>" filters.
// Values may list several alternatives separated by commas. A value of "*"
// only requires the tag key to exist. Output is ordered by key.
func BuildTagFilters(tags map[string]string) []types.Filter {
	if len(tags) == 0 {
		return nil
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		if strings.TrimSpace(k) != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	filters := make([]types.Filter, 0, len(keys))
	for _, key := range keys {
		value := strings.TrimSpace(tags[key])
		if value == "*" || value == "" {
			filters = append(filters, types.Filter{
				Name:   aws.String("tag-key"),
				Values: []string{strings.TrimSpace(key)},
			})
			continue
		}
		values := SplitFilterValue(value)
		if len(values) == 0 {
			continue
		}
		filters = append(filters, types.Filter{
			Name:   aws.String(awsTagFilterPrefix + strings.TrimSpace(key)),
			Values: values,
		})
	}
	return filters
}

func SplitFilterValue(value string) []string {
	if !strings.Contains(value, ",") {
		return []string{value}
	}
	parts := strings.Split(value, ",")
	trimmedParts := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			trimmedParts = append(trimmedParts, trimmed)
		}
	}
	if len(trimmedParts) == 0 {
		return []string{}
	}
	return trimmedParts
}
