// Package services contains domain services: logic that operates on domain
// model types but does not naturally belong to a single aggregate.
//
// StatusProjector maps the detailed fulfillment status onto the coarse
// status vocabulary the storefront understands.
package services
