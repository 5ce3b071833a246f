package policy

import (
	"fmt"
	"strings"
)

// RoleNameForFarm derives the fleet role name from a farm display name.
func RoleNameForFarm(farmName string) string {
	return strings.ReplaceAll(farmName, " ", "_") + "FleetRole"
}

func RoleArn(partition, accountID, roleName string) string {
	return fmt.Sprintf("arn:%s:iam::%s:role/%s", partition, accountID, roleName)
}

// SourceArn is the ARN of the farm that is allowed to assume the fleet role.
func SourceArn(partition, region, accountID, farmID string) string {
	return fmt.Sprintf("arn:%s:deadline:%s:%s:farm/%s", partition, region, accountID, farmID)
}
