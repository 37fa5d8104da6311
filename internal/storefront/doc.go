// Package storefront holds the runtime state of one storefront session.
//
// A Session is the single owner of the catalog, the category list, the cart,
// the filter state, the featured product and the status flags. The UI reads
// it through Snapshot and Visible and mutates it only through Session
// methods; every write replaces a whole value under the session lock.
//
// Loads never fail from the caller's point of view. When the remote source
// errors or returns nothing usable, LoadProducts installs the fallback
// dataset, raises the advisory flag and logs the cause; LoadCategories does
// the same without the advisory.
package storefront
