// Package models holds the GORM persistence models of the shop and their
// mapping to and from domain entities. Domain types carry no gorm tags.
package models
