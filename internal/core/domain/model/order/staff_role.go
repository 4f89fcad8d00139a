package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// StaffRole identifies which staff slot of an order an assignment targets.
type StaffRole int

const (
	// RoleUnknown catches uninitialized StaffRole values.
	RoleUnknown StaffRole = iota

	// RolePicker sources the goods.
	RolePicker

	// RolePacker packs the parcel.
	RolePacker

	// RoleQC reviews the packed parcel.
	RoleQC

	// RoleCourierPerson hands the parcel to the courier.
	RoleCourierPerson
)

func getStaffRoleStrings() map[StaffRole]string {
	return map[StaffRole]string{
		RoleUnknown:       "unknown",
		RolePicker:        "picker",
		RolePacker:        "packer",
		RoleQC:            "qc",
		RoleCourierPerson: "courier_person",
	}
}

// ParseStaffRole converts a role string to its StaffRole value.
func ParseStaffRole(s string) (StaffRole, error) {
	if s == "" {
		return RoleUnknown, errs.NewValueIsRequiredError("staff role")
	}
	for role, str := range getStaffRoleStrings() {
		if str == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("staff role",
		fmt.Errorf("%q is not a known staff role", s))
}

// Validate checks that the role is a member of the enumeration.
func (r StaffRole) Validate() error {
	if r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("staff role",
			fmt.Errorf("%d is not a valid staff role", int(r)))
	}
	if _, ok := getStaffRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("staff role",
			fmt.Errorf("%d is not a valid staff role", int(r)))
	}
	return nil
}

// String returns the role name. Implements fmt.Stringer.
func (r StaffRole) String() string {
	if str, ok := getStaffRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
