package registry

import "github.com/challey74/netinv/field"

// Built-in field definitions for the device inventory vocabulary.
// Custom fields are written locally by automation tasks; netbox fields
// mirror the upstream source of truth and arrive already parsed.

// StackInfo describes virtual-stack state recorded by stacking tasks.
var StackInfo = field.NewGroup("stack_info",
	field.Bool("is_stack"),
	field.List("stack_members"),
	field.String("stack_master", field.NotEmpty),
	field.Bool("target_in_flash"),
).Custom()

// Platform describes the device operating system assignment.
var Platform = field.NewGroup("platform",
	field.Int("id", field.PositiveInt),
	field.String("name", field.NotEmpty),
	field.String("slug", field.NotEmpty),
	field.String("display", field.NotEmpty),
	field.String("description"),
)

// Manufacturer describes the hardware vendor.
var Manufacturer = field.NewGroup("manufacturer",
	field.Int("id", field.PositiveInt),
	field.String("name", field.NotEmpty),
	field.String("slug", field.NotEmpty),
)

// DeviceType describes the hardware model, with the manufacturer nested
// one level deeper.
var DeviceType = field.NewGroup("device_type",
	field.Int("id", field.PositiveInt),
	field.String("model", field.NotEmpty),
	field.String("slug", field.NotEmpty),
	field.String("display", field.NotEmpty),
	Manufacturer,
)

// Site describes the physical location assignment.
var Site = field.NewGroup("site",
	field.Int("id", field.PositiveInt),
	field.String("name", field.NotEmpty),
	field.String("slug", field.NotEmpty),
)

// Tenant describes the organizational owner.
var Tenant = field.NewGroup("tenant",
	field.Int("id", field.PositiveInt),
	field.String("name", field.NotEmpty),
	field.String("slug", field.NotEmpty),
)

// Status describes the upstream lifecycle state.
var Status = field.NewGroup("status",
	field.String("label", field.NotEmpty),
	field.Enum("value", "active", "offline", "planned", "staged", "failed", "inventory", "decommissioning"),
)

// Role describes the functional role assignment.
var Role = field.NewGroup("role",
	field.Int("id", field.PositiveInt),
	field.String("name", field.NotEmpty),
	field.String("slug", field.NotEmpty),
)

// VirtualChassis describes stack membership from the source of truth,
// including the elected master device.
var VirtualChassis = field.NewGroup("virtual_chassis",
	field.Int("id", field.PositiveInt),
	field.String("name", field.NotEmpty),
	field.Int("member_count", field.PositiveInt),
	field.NewGroup("master",
		field.Int("id", field.PositiveInt),
		field.String("name", field.NotEmpty),
	),
)

// Default returns the standard device attribute registry. Callers needing a
// different vocabulary (tests, alternate inventories) construct their own
// registry with New.
func Default() *Registry {
	return MustNew(
		// Custom fields
		field.String("auth_status", field.NotEmpty).Custom(),
		field.Bool("boot_statement_set").Custom(),
		field.String("connection_error", field.NotEmpty).Custom(),
		field.String("current_image", field.NotEmpty).Custom(),
		field.String("dns_ip", field.NotEmpty).Custom(),
		field.Int("flash_space_available", field.PositiveInt).Custom(),
		field.Bool("hostname_verified").Custom(),
		field.List("images_to_delete").Custom(),
		field.Bool("inactive").Custom(),
		field.String("ios_version", field.NotEmpty).Custom(),
		field.Bool("is_at_target").Custom(),
		field.String("ping_status", field.NotEmpty).Custom(),
		field.String("primary_image", field.NotEmpty).Custom(),
		field.Bool("primary_image_in_flash").Custom(),
		field.String("primary_image_md5", field.NotEmpty).Custom(),
		field.Bool("primary_image_md5_verified").Custom(),
		field.Int("primary_image_size", field.PositiveInt).Custom(),
		field.Bool("reload_set").Custom(),
		field.String("reload_time", field.ReloadWindow).Custom(),
		field.Bool("scp_enabled").Custom(),
		field.String("solarwinds_status", field.NotEmpty).Custom(),
		field.Bool("ssh_bulk_mode").Custom(),
		StackInfo,
		field.Bool("supports_ssh_bulk_mode").Custom(),

		// Netbox fields
		field.String("airflow"),
		field.String("asset_tag"),
		field.Object("cluster"),
		field.String("comments"),
		field.Object("config_context"),
		field.Int("console_port_count"),
		field.String("created", field.NotEmpty),
		field.Object("custom_fields"),
		field.String("description"),
		DeviceType,
		field.String("display", field.NotEmpty),
		field.Enum("face", "front", "rear"),
		field.Int("id", field.PositiveInt),
		field.Int("interface_count", field.PositiveInt),
		field.String("last_updated", field.NotEmpty),
		field.Float("latitude"),
		field.Object("location"),
		field.Float("longitude"),
		field.String("name", field.NotEmpty),
		field.Object("oob_ip"),
		field.Object("parent_device"),
		Platform,
		field.Int("position"),
		field.Object("primary_ip"),
		field.Object("primary_ip4"),
		field.Object("primary_ip6"),
		field.Object("rack"),
		Role,
		field.String("serial"),
		Site,
		Status,
		field.List("tags"),
		Tenant,
		field.Int("vc_position"),
		field.Int("vc_priority"),
		VirtualChassis,
	)
}
