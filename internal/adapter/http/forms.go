package http

import (
	"resume-builder/internal/editor"

	"github.com/gofiber/fiber/v2"
)

// Form posts follow Post/Redirect/Get: every handler applies its edits and
// sends the browser back to the editor, which reloads the preview.

func backTo(c *fiber.Ctx, anchor string) error {
	return c.Redirect("/#"+anchor, fiber.StatusSeeOther)
}

func (h *Handler) FormTemplate(c *fiber.Ctx) error {
	sessionFrom(c).SelectTemplate(c.FormValue("template"))
	return backTo(c, "template")
}

func (h *Handler) FormPersonal(c *fiber.Ctx) error {
	cmds := make([]editor.Command, 0, len(editor.PersonalFields))
	for _, f := range editor.PersonalFields {
		cmds = append(cmds, editor.SetPersonal(f, c.FormValue(f)))
	}
	if err := dispatchAll(sessionFrom(c), cmds); err != nil {
		return err
	}
	return backTo(c, "personal")
}

func (h *Handler) FormAdd(c *fiber.Ctx) error {
	section, err := sectionParam(c)
	if err != nil {
		return err
	}
	if _, err := sessionFrom(c).Dispatch(editor.AddEntry(section)); err != nil {
		return err
	}
	return backTo(c, string(section))
}

// FormUpdate saves a whole entry form. Unchecked checkboxes are absent from
// the body, so every field is written, absent ones as empty.
func (h *Handler) FormUpdate(c *fiber.Ctx) error {
	section, err := sectionParam(c)
	if err != nil {
		return err
	}
	id := c.Params("id")
	fields := editor.Fields(section)
	cmds := make([]editor.Command, 0, len(fields))
	for _, f := range fields {
		cmds = append(cmds, editor.UpdateEntry(section, id, f, c.FormValue(f)))
	}
	if err := dispatchAll(sessionFrom(c), cmds); err != nil {
		return err
	}
	return backTo(c, string(section))
}

func (h *Handler) FormRemove(c *fiber.Ctx) error {
	section, err := sectionParam(c)
	if err != nil {
		return err
	}
	if _, err := sessionFrom(c).Dispatch(editor.RemoveEntry(section, c.Params("id"))); err != nil {
		return err
	}
	return backTo(c, string(section))
}

// FormReset ends the session. The next request starts an empty one.
func (h *Handler) FormReset(c *fiber.Ctx) error {
	h.store.End(sessionFrom(c).ID)
	c.ClearCookie(h.cookie)
	return c.Redirect("/", fiber.StatusSeeOther)
}
