// Package api serves the counter resource over HTTP.
//
// @title            The best counter API ever
// @version          1.0
// @description      This is the best API every, please use me!
// @termsOfService   https://github.com/GREsau/okapi/blob/master/LICENSE
// @contact.name     Dilec Padovani
// @contact.url      https://github.com/DILECPEDO
// @contact.email    test@test.com
// @license.name     MIT
// @license.url      https://github.com/GREsau/okapi/blob/master/LICENSE
// @BasePath         /
// @tag.name         Home
// @tag.description  Counter listing
// @tag.name         Counters
// @tag.description  Create, decrement and inspect named counters
package api
