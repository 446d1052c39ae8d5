package assemble

import (
	"fmt"
	"net/url"
	"strings"

	"ewintr.nl/hobbyplan/hobby"
	"ewintr.nl/hobbyplan/model"
)

const searchBase = "https://www.amazon.com/s"

type product struct {
	title string
	price string
}

var hobbyProducts = map[string][]product{
	"guitar": {
		{"Beginner Acoustic Guitar Starter Kit", "$129.99"},
		{"Clip-On Chromatic Guitar Tuner", "$12.99"},
		{"Guitar Picks Variety Pack", "$7.99"},
		{"Adjustable Guitar Capo", "$9.99"},
	},
	"cooking": {
		{"8-Inch Chef's Knife", "$34.99"},
		{"Bamboo Cutting Board Set", "$24.99"},
		{"Beginner's Cookbook", "$18.99"},
	},
	"drawing": {
		{"Graphite Sketching Pencil Set", "$14.99"},
		{"Mixed Media Sketchbook", "$11.99"},
		{"Kneaded Eraser Pack", "$5.99"},
	},
	"yoga": {
		{"Non-Slip Yoga Mat", "$29.99"},
		{"Yoga Blocks (Set of 2)", "$15.99"},
		{"Cotton Yoga Strap", "$8.99"},
	},
	"photography": {
		{"Beginner Camera Tripod", "$39.99"},
		{"Lens Cleaning Kit", "$12.99"},
		{"SD Memory Card 128GB", "$19.99"},
	},
	"knitting": {
		{"Beginner Knitting Kit", "$24.99"},
		{"Bamboo Knitting Needles Set", "$16.99"},
		{"Merino Yarn Bundle", "$21.99"},
	},
	"running": {
		{"Lightweight Running Shoes", "$89.99"},
		{"Running Belt Phone Holder", "$14.99"},
		{"Reflective Running Vest", "$17.99"},
	},
}

// categoryProducts hold title templates; %s is the display name of the
// hobby.
var categoryProducts = map[model.Category][]product{
	model.CategoryCreative: {
		{"%s Starter Kit", "$24.99"},
		{"%s Techniques Handbook", "$16.99"},
	},
	model.CategoryOutdoor: {
		{"%s Beginner Gear Set", "$39.99"},
		{"%s Field Guide", "$14.99"},
	},
	model.CategoryFitness: {
		{"%s Training Essentials", "$29.99"},
		{"%s Workout Journal", "$9.99"},
	},
	model.CategoryGames: {
		{"%s Starter Set", "$19.99"},
		{"%s Strategy Guide", "$15.99"},
	},
	model.CategoryTechnology: {
		{"%s Beginner Kit", "$34.99"},
		{"%s Project Book", "$24.99"},
	},
	model.CategoryCulinary: {
		{"%s Essentials Set", "$29.99"},
		{"%s Recipe Book", "$19.99"},
	},
	model.CategoryWellness: {
		{"%s Practice Journal", "$12.99"},
		{"%s Guide for Beginners", "$14.99"},
	},
}

var genericProducts = []product{
	{"%s for Beginners Book", "$17.99"},
	{"%s Starter Kit", "$24.99"},
	{"Practice Journal for %s", "$9.99"},
}

// ProductCatalog looks up affiliate products for a plan day. Links are
// search links so they do not go stale.
type ProductCatalog struct {
	tag string
}

func NewProductCatalog(affiliateTag string) *ProductCatalog {
	return &ProductCatalog{tag: strings.TrimSpace(affiliateTag)}
}

// Products returns the product for the given day. Hobbies without their own
// entries get the templates of their category, or the generic ones.
func (pc *ProductCatalog) Products(name string, category model.Category, day int) []model.AffiliateProduct {
	key := strings.ToLower(strings.TrimSpace(name))
	display := hobby.DisplayName(key)

	list, templated := hobbyProducts[key], false
	if len(list) == 0 {
		list, templated = categoryProducts[category], true
	}
	if len(list) == 0 {
		list, templated = genericProducts, true
	}
	if day < 1 {
		day = 1
	}

	p := list[(day-1)%len(list)]
	title := p.title
	if templated {
		title = fmt.Sprintf(p.title, display)
	}

	return []model.AffiliateProduct{{
		Title: title,
		Link:  pc.link(title),
		Price: p.price,
	}}
}

func (pc *ProductCatalog) link(title string) string {
	q := url.Values{}
	q.Set("k", title)
	if pc.tag != "" {
		q.Set("tag", pc.tag)
	}

	return fmt.Sprintf("%s?%s", searchBase, q.Encode())
}
