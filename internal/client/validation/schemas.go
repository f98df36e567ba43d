package validation

// Login validates the sign-in form: a well-formed email and a non-empty
// password. No password format check on login.
func Login() Schema {
	return Schema{
		{Field: "email", Rules: []Rule{
			Required("Email is required"),
			Email("Enter a valid email"),
		}},
		{Field: "password", Rules: []Rule{
			Required("Password is required"),
		}},
	}
}

// Registration validates the create-account form, including password
// strength and the confirm-password match.
func Registration() Schema {
	return Schema{
		{Field: "name", Rules: []Rule{
			Required("Full name is required"),
			MinLen(2, "Name is too short"),
			MaxLen(100, "Name is too long"),
		}},
		{Field: "email", Rules: []Rule{
			Required("Email is required"),
			Email("Enter a valid email"),
		}},
		{Field: "password", Rules: []Rule{
			Required("Password is required"),
			MinLen(8, "Minimum 8 characters"),
			Matches(`[A-Z]`, "At least one uppercase letter"),
			Matches(`[a-z]`, "At least one lowercase letter"),
			Matches(`\d`, "At least one number"),
			Matches(`[^A-Za-z0-9]`, "At least one special character"),
		}},
		{Field: "confirmPassword", Rules: []Rule{
			Required("Confirm your password"),
			EqualTo("password", "Passwords must match"),
		}},
	}
}

// Transaction validates the deposit/withdraw form: a strictly positive
// amount and a non-empty description.
func Transaction() Schema {
	return Schema{
		{Field: "amount", Rules: []Rule{
			Positive("Amount must be positive"),
		}},
		{Field: "description", Rules: []Rule{
			Required("Description is required"),
		}},
	}
}
