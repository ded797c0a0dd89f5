// Package forms assembles the portal's page-level validators: the auth form
// with its login and register modes, the profile form and its three-step
// wizard, the issuer lookup forms and the document upload form.
package forms
