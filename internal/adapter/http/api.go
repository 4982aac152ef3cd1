package http

import (
	"encoding/json"

	"resume-builder/internal/editor"
	"resume-builder/internal/model"
	"resume-builder/internal/render"

	"github.com/gofiber/fiber/v2"
)

func sendRecord(c *fiber.Ctx, rec model.Resume) error {
	c.Type("json", "utf-8")
	return model.Encode(c, rec)
}

func decodeFields(c *fiber.Ctx) (map[string]any, error) {
	body := map[string]any{}
	if len(c.Body()) == 0 {
		return body, nil
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	return body, nil
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	return sendRecord(c, sessionFrom(c).Record())
}

// PutResume replaces the session's record with an imported document.
func (h *Handler) PutResume(c *fiber.Ctx) error {
	rec, err := model.DecodeBytes(c.Body())
	if err != nil {
		return err
	}
	sess := sessionFrom(c)
	sess.Replace(rec)
	return sendRecord(c, sess.Record())
}

func (h *Handler) PutPersonal(c *fiber.Ctx) error {
	body, err := decodeFields(c)
	if err != nil {
		return err
	}
	cmds, err := fieldCommands(body, editor.PersonalFields, editor.SetPersonal, unknownField("personalInfo"))
	if err != nil {
		return err
	}
	sess := sessionFrom(c)
	if err := dispatchAll(sess, cmds); err != nil {
		return err
	}
	return sendRecord(c, sess.Record())
}

// AddEntry appends an entry, optionally filled from the request body, and
// returns its id together with the new record.
func (h *Handler) AddEntry(c *fiber.Ctx) error {
	section, err := sectionParam(c)
	if err != nil {
		return err
	}
	body, err := decodeFields(c)
	if err != nil {
		return err
	}
	// validate before adding so a bad body leaves no empty entry behind
	if _, err := fieldCommands(body, editor.Fields(section), func(f, v string) editor.Command {
		return editor.UpdateEntry(section, "", f, v)
	}, unknownField(string(section))); err != nil {
		return err
	}

	sess := sessionFrom(c)
	res, err := sess.Dispatch(editor.AddEntry(section))
	if err != nil {
		return err
	}
	cmds, _ := fieldCommands(body, editor.Fields(section), func(f, v string) editor.Command {
		return editor.UpdateEntry(section, res.NewID, f, v)
	}, unknownField(string(section)))
	if err := dispatchAll(sess, cmds); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": res.NewID, "resume": sess.Record()})
}

func (h *Handler) UpdateEntry(c *fiber.Ctx) error {
	section, err := sectionParam(c)
	if err != nil {
		return err
	}
	body, err := decodeFields(c)
	if err != nil {
		return err
	}
	id := c.Params("id")
	cmds, err := fieldCommands(body, editor.Fields(section), func(f, v string) editor.Command {
		return editor.UpdateEntry(section, id, f, v)
	}, unknownField(string(section)))
	if err != nil {
		return err
	}
	sess := sessionFrom(c)
	if err := dispatchAll(sess, cmds); err != nil {
		return err
	}
	return sendRecord(c, sess.Record())
}

func (h *Handler) RemoveEntry(c *fiber.Ctx) error {
	section, err := sectionParam(c)
	if err != nil {
		return err
	}
	sess := sessionFrom(c)
	if _, err := sess.Dispatch(editor.RemoveEntry(section, c.Params("id"))); err != nil {
		return err
	}
	return sendRecord(c, sess.Record())
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"active":    sessionFrom(c).TemplateID(),
		"templates": render.Catalog(),
	})
}

func (h *Handler) GetTemplate(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"template": sessionFrom(c).TemplateID()})
}

type templateReq struct {
	Template string `json:"template"`
}

func (h *Handler) PutTemplate(c *fiber.Ctx) error {
	var req templateReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	id := sessionFrom(c).SelectTemplate(req.Template)
	return c.JSON(fiber.Map{"template": id})
}
