package models

import (
	"strconv"

	"github.com/Faultbox/blockmodels/internal/rig"
)

// Entry is one model of the standard set: how to build it, what to call
// it and where to save it.
type Entry struct {
	Name  string  // display name, stored in the model
	File  string  // file stem
	Scale float32 // compile scale
	Build func() (rig.Source, error)
}

func source[T rig.Source](build func() (T, error)) func() (rig.Source, error) {
	return func() (rig.Source, error) {
		m, err := build()
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

func slime(kind int) func() (rig.Source, error) {
	return source(func() (*Slime, error) { return NewSlime(kind) })
}

// Catalog returns the standard model set in generation order.
func Catalog() []Entry {
	return []Entry{
		{"Pig", "Pig", 1, source(NewPig)},
		{"Human", "Human", 1, source(NewHuman)},
		{"Villager", "Villager", 1, source(NewVillager)},
		{"Creeper", "Creeper", 1, source(NewCreeper)},
		{"Cow", "Cow", 1, source(NewCow)},
		{"Chicken", "Chicken", 1, source(NewChicken)},
		{"Tiny Slime", "TinySlime", 1, slime(0)},
		{"Small Slime", "SmallSlime", 2, slime(1)},
		{"Medium Slime", "MediumSlime", 3, slime(1)},
		{"Huge Slime", "HugeSlime", 4, slime(1)},
		{"Squid", "Squid", 1, source(NewSquid)},
		{"Tiny Magma Cube", "TinyMagmaCube", 1, source(NewMagmaCube)},
		{"Small Magma Cube", "SmallMagmaCube", 2, source(NewMagmaCube)},
		{"Medium Magma Cube", "MediumMagmaCube", 3, source(NewMagmaCube)},
		{"Huge Magma Cube", "HugeMagmaCube", 4, source(NewMagmaCube)},
		{"Blaze", "Blaze", 1, source(NewBlaze)},
		{"Silverfish", "Silverfish", 1, source(NewSilverfish)},
		{"Enderman", "Enderman", 1, source(NewEnderman)},
		{"Wolf", "Wolf", 1, source(NewWolf)},
		{"Ghast", "Ghast", 1, source(NewGhast)},
		{"Spider", "Spider", 1, source(NewSpider)},
		{"Sheep Fur", "Sheep Fur", 1, source(NewSheepFur)},
		{"Sheep", "Sheep", 1, source(NewSheep)},
		{"Chest", "Chest", 1, source(NewChest)},
		{"Large Chest", "LargeChest", 1, source(NewLargeChest)},
		{"Boat", "Boat", 1, source(NewBoat)},
		{"Sign", "Sign", 1, source(NewSign)},
		{"Book", "Book", 1, source(NewBook)},
		{"Minecart", "Minecart", 1, source(NewMinecart)},
		{"Ender Crystal", "EnderCrystal", 1, source(NewEnderCrystal)},
		{"SnowMan", "SnowMan", 1, source(NewSnowMan)},
		{"PonyTest", "PonyTest", 1, source(func() (*Pony, error) { return NewPony(false, true) })},
		{"Zombie", "Zombie", 1, source(NewZombie)},
		{"Skeleton", "Skeleton", 1, source(NewSkeleton)},
	}
}

// Find returns the catalog entry with the given display name or file
// stem.
func Find(name string) (Entry, bool) {
	for _, e := range Catalog() {
		if e.Name == name || e.File == name {
			return e, true
		}
	}
	return Entry{}, false
}

func indexed(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}
