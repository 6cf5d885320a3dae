package templates

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/text/message"

	"github.com/uamlabs/labfront/internal/web/routepath"
)

// keyLocalizer echoes localization keys so assertions stay deterministic.
type keyLocalizer struct{}

func (keyLocalizer) Sprintf(key message.Reference, args ...any) string {
	keyString, _ := key.(string)
	if len(args) > 0 {
		return fmt.Sprintf(keyString, args...)
	}
	return keyString
}

func renderToString(t *testing.T, component templ.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := component.Render(context.Background(), &sb); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return sb.String()
}

func TestAppLayoutNavbarAdminLink(t *testing.T) {
	t.Parallel()

	admin := renderToString(t, AppLayout("Home", Viewer{Name: "Ada", Admin: true}, nil, "en", keyLocalizer{}, nil))
	if !strings.Contains(admin, routepath.AppAdminUsers) {
		t.Fatalf("admin navbar missing %q:\n%s", routepath.AppAdminUsers, admin)
	}

	user := renderToString(t, AppLayout("Home", Viewer{Name: "Ada"}, nil, "en", keyLocalizer{}, nil))
	if strings.Contains(user, routepath.AppAdminUsers) {
		t.Fatalf("non-admin navbar should not link %q:\n%s", routepath.AppAdminUsers, user)
	}
	if !strings.Contains(user, "Ada") {
		t.Fatal("navbar should show the viewer name")
	}
}

func TestToastRendersOnceWithAutoHide(t *testing.T) {
	t.Parallel()

	html := renderToString(t, AppLayout("Home", Viewer{}, &Toast{Kind: "success", Message: "saved"}, "en", keyLocalizer{}, nil))
	if !strings.Contains(html, `class="toast toast-success"`) {
		t.Fatalf("toast markup missing:\n%s", html)
	}
	if !strings.Contains(html, "saved") {
		t.Fatal("toast message missing")
	}
	if !strings.Contains(html, fmt.Sprintf("},%d);", ToastVisibleMillis)) {
		t.Fatalf("auto-hide window should be %dms", ToastVisibleMillis)
	}

	quiet := renderToString(t, AppLayout("Home", Viewer{}, nil, "en", keyLocalizer{}, nil))
	if strings.Contains(quiet, "toast") {
		t.Fatal("no toast expected without a notice")
	}
}

func TestLoginPageRetainsEmailAndAlert(t *testing.T) {
	t.Parallel()

	html := renderToString(t, LoginPage(LoginForm{
		Email:  "ada@example.com",
		Alert:  "bad <credentials>",
		Errors: map[string]string{"password": "form.error_required"},
	}, keyLocalizer{}))
	if !strings.Contains(html, `value="ada@example.com"`) {
		t.Fatal("email should survive a failed submission")
	}
	if !strings.Contains(html, "bad &lt;credentials&gt;") {
		t.Fatal("alert copy should render escaped")
	}
	if !strings.Contains(html, "form.error_required") {
		t.Fatal("password field error missing")
	}
	if !strings.Contains(html, `action="`+routepath.Login+`"`) {
		t.Fatal("form should post back to the login route")
	}
}

func TestLabsPageHidesActionsForNonAdmins(t *testing.T) {
	t.Parallel()

	rows := []LabRow{{ID: 7, Code: "LAB-07", Name: "Redes", Owner: "Ada (ada@example.com)"}}

	admin := renderToString(t, LabsPage(rows, true, "", keyLocalizer{}))
	if !strings.Contains(admin, routepath.AppLabEdit(7)) || !strings.Contains(admin, routepath.AppLabDelete(7)) {
		t.Fatalf("admin listing missing manage actions:\n%s", admin)
	}
	if !strings.Contains(admin, routepath.AppLabNew) {
		t.Fatal("admin listing should link the create form")
	}

	user := renderToString(t, LabsPage(rows, false, "", keyLocalizer{}))
	if strings.Contains(user, routepath.AppLabEdit(7)) || strings.Contains(user, routepath.AppLabNew) {
		t.Fatalf("non-admin listing should be read-only:\n%s", user)
	}
	if !strings.Contains(user, "Ada (ada@example.com)") {
		t.Fatal("owner label missing")
	}
}

func TestLabsPageEmptyState(t *testing.T) {
	t.Parallel()

	html := renderToString(t, LabsPage(nil, false, "", keyLocalizer{}))
	if !strings.Contains(html, "labs.empty") {
		t.Fatalf("empty state missing:\n%s", html)
	}
	if strings.Contains(html, "<table") {
		t.Fatal("no table expected without rows")
	}
}

func TestLabFormOwnerSelection(t *testing.T) {
	t.Parallel()

	owner := 3
	html := renderToString(t, LabFormPage(LabForm{
		ID:      5,
		Code:    "LAB-05",
		OwnerID: &owner,
		Owners: []OwnerOption{
			{ID: 2, Label: "Grace (grace@example.com)"},
			{ID: 3, Label: "Ada (ada@example.com)"},
		},
	}, keyLocalizer{}))
	if !strings.Contains(html, `<option value="3" selected>`) {
		t.Fatalf("assigned owner should be selected:\n%s", html)
	}
	if !strings.Contains(html, `<option value="">`) {
		t.Fatal("unassigned option missing")
	}
	if !strings.Contains(html, `action="`+routepath.AppLabSave(5)+`"`) {
		t.Fatal("edit form should post to the save route")
	}

	create := renderToString(t, LabFormPage(LabForm{IsNew: true}, keyLocalizer{}))
	if !strings.Contains(create, `action="`+routepath.AppLabs+`"`) {
		t.Fatal("create form should post to the collection route")
	}
}

func TestConfirmDeletePage(t *testing.T) {
	t.Parallel()

	html := renderToString(t, ConfirmDeletePage(ConfirmDelete{
		Heading:       "Delete laboratory",
		Question:      `Delete "Redes"?`,
		ConfirmAction: routepath.AppLabDelete(7),
		CancelHref:    routepath.AppLabs,
	}, keyLocalizer{}))
	if !strings.Contains(html, `action="`+routepath.AppLabDelete(7)+`"`) {
		t.Fatal("confirm form should post to the delete route")
	}
	if !strings.Contains(html, `href="`+routepath.AppLabs+`"`) {
		t.Fatal("cancel link should navigate back")
	}
	if !strings.Contains(html, "Delete &#34;Redes&#34;?") {
		t.Fatalf("question should render escaped:\n%s", html)
	}
}

func TestUserEditPageChecksFlags(t *testing.T) {
	t.Parallel()

	html := renderToString(t, UserEditPage(UserEditForm{
		ID:     9,
		Name:   "Ada",
		Email:  "ada@example.com",
		Active: true,
		Admin:  false,
	}, keyLocalizer{}))
	if !strings.Contains(html, `name="active" type="checkbox" value="true" checked`) {
		t.Fatalf("active flag should render checked:\n%s", html)
	}
	if strings.Contains(html, `name="admin" type="checkbox" value="true" checked`) {
		t.Fatal("admin flag should render unchecked")
	}
	if !strings.Contains(html, `action="`+routepath.AppAdminUserSave(9)+`"`) {
		t.Fatal("form should post to the save route")
	}
}
